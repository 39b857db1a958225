package dao

import (
	"context"
	"errors"

	"StudyHub/models"

	"gorm.io/gorm"
)

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{
		Repo: NewRepo[models.Topic](db),
	}
}

const topicOrder = "follow_count DESC, question_count DESC, id DESC"

// ListHot 获取热门话题
func (d *Topic) ListHot(ctx context.Context, limit int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Order(topicOrder).
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// ListPaged 分页获取话题，排序规则与热门列表一致
func (d *Topic) ListPaged(ctx context.Context, offset, limit int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Order(topicOrder).
		Offset(offset).
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// FindByName 根据名称精确查询话题，不存在返回 nil
func (d *Topic) FindByName(ctx context.Context, name string) (*models.Topic, error) {
	var topic models.Topic
	err := d.Db.WithContext(ctx).
		Where("name = ?", name).
		First(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// Search 按名称或描述模糊搜索话题
func (d *Topic) Search(ctx context.Context, keyword string, offset, limit int) ([]*models.Topic, error) {
	var topics []*models.Topic
	like := "%" + keyword + "%"
	err := d.Db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", like, like).
		Order(topicOrder).
		Offset(offset).
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// IncrementQuestionCount 增加话题下的问题数
func (d *Topic) IncrementQuestionCount(ctx context.Context, topicID uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", topicID).
		UpdateColumn("question_count", gorm.Expr("question_count + 1")).
		Error
}
