package dao

import (
	"context"

	"StudyHub/models"

	"gorm.io/gorm"
)

type Question struct {
	Repo[models.Question]
}

func NewQuestion(db *gorm.DB) *Question {
	return &Question{
		Repo: NewRepo[models.Question](db),
	}
}

const questionLatestOrder = "create_time DESC, id DESC"

// ListLatest 最新问题列表，keyword 可选
func (d *Question) ListLatest(ctx context.Context, keyword string, offset, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	query := d.Db.WithContext(ctx).Model(&models.Question{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}
	err := query.
		Order(questionLatestOrder).
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// ListByTopic 按话题查询问题
func (d *Question) ListByTopic(ctx context.Context, topicID uint64, offset, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := d.Db.WithContext(ctx).
		Joins("JOIN question_topic_binding qt ON question.id = qt.question_id").
		Where("qt.topic_id = ?", topicID).
		Order("question.create_time DESC, question.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// ListFollowed 查询用户关注的问题
func (d *Question) ListFollowed(ctx context.Context, userID uint64, offset, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := d.Db.WithContext(ctx).
		Joins("JOIN question_follow qf ON question.id = qf.question_id").
		Where("qf.user_id = ?", userID).
		Order("question.create_time DESC, question.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// ListBySort 按热度策略查询问题，sort 取 hot / recommend
func (d *Question) ListBySort(ctx context.Context, sort string, offset, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	query := d.Db.WithContext(ctx).Model(&models.Question{})
	switch sort {
	case "hot":
		query = query.Order("(answer_count * 2 + view_count + follow_count) DESC, create_time DESC")
	case "recommend":
		query = query.Order("answer_count DESC, view_count DESC, create_time DESC")
	default:
		query = query.Order(questionLatestOrder)
	}
	err := query.
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// ListByAuthor 按作者查询问题
func (d *Question) ListByAuthor(ctx context.Context, authorID uint64, offset, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order(questionLatestOrder).
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// SuggestTitles 搜索联想，按标题前缀匹配
func (d *Question) SuggestTitles(ctx context.Context, keyword string, limit int) ([]string, error) {
	var titles []string
	err := d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("title LIKE ?", keyword+"%").
		Order(questionLatestOrder).
		Limit(limit).
		Pluck("title", &titles).Error
	return titles, err
}

// IncrementViewCount 浏览数 +1
func (d *Question) IncrementViewCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).
		Error
}

// IncrementAnswerCount 回答数 +1
func (d *Question) IncrementAnswerCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", id).
		UpdateColumn("answer_count", gorm.Expr("answer_count + 1")).
		Error
}

// DecrementAnswerCount 回答数 -1，在 SQL 层兜底不减到负数
func (d *Question) DecrementAnswerCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ? AND answer_count > 0", id).
		UpdateColumn("answer_count", gorm.Expr("answer_count - 1")).
		Error
}

// DeleteOwned 按作者删除问题
func (d *Question) DeleteOwned(ctx context.Context, id, authorID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&models.Question{}).Error
}
