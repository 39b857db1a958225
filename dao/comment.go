package dao

import (
	"context"

	"StudyHub/models"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListByAnswer 获取回答下的全部评论
// 按创建时间正序返回，保证父评论先于子评论出现，树构建依赖这个顺序
func (d *Comment) ListByAnswer(ctx context.Context, answerID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("answer_id = ?", answerID).
		Order("create_time ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// IncrementVoteCount 点赞数 +1
func (d *Comment) IncrementVoteCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("vote_count", gorm.Expr("vote_count + 1")).
		Error
}

// UpdateOwned 按作者更新评论内容
func (d *Comment) UpdateOwned(ctx context.Context, id, authorID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Update("content", content).Error
}

// DeleteOwned 按作者删除评论，不级联子回复
func (d *Comment) DeleteOwned(ctx context.Context, id, authorID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&models.Comment{}).Error
}
