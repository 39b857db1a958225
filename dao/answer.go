package dao

import (
	"context"

	"StudyHub/models"

	"gorm.io/gorm"
)

type Answer struct {
	Repo[models.Answer]
}

func NewAnswer(db *gorm.DB) *Answer {
	return &Answer{
		Repo: NewRepo[models.Answer](db),
	}
}

// ListByQuestion 查询问题下的回答，sort 为 vote_count 时按票数排序
func (d *Answer) ListByQuestion(ctx context.Context, questionID uint64, sort string, offset, limit int) ([]*models.Answer, error) {
	var answers []*models.Answer
	order := "create_time DESC, id DESC"
	if sort == "vote_count" {
		order = "vote_count DESC, id DESC"
	}
	err := d.Db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&answers).Error
	return answers, err
}

// ListByAuthor 按作者查询回答
func (d *Answer) ListByAuthor(ctx context.Context, authorID uint64, offset, limit int) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("create_time DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&answers).Error
	return answers, err
}

// IncrementVoteCount 点赞数 +1
func (d *Answer) IncrementVoteCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", id).
		UpdateColumn("vote_count", gorm.Expr("vote_count + 1")).
		Error
}

// IncrementCommentCount 评论数 +1
func (d *Answer) IncrementCommentCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).
		Error
}

// UpdateOwned 按作者更新回答内容
func (d *Answer) UpdateOwned(ctx context.Context, id, authorID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Update("content", content).Error
}

// DeleteOwned 按作者删除回答
func (d *Answer) DeleteOwned(ctx context.Context, id, authorID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&models.Answer{}).Error
}
