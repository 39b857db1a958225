package dao

import (
	"context"

	"StudyHub/models"

	"gorm.io/gorm"
)

type QuestionTopic struct {
	Repo[models.QuestionTopic]
}

func NewQuestionTopic(db *gorm.DB) *QuestionTopic {
	return &QuestionTopic{
		Repo: NewRepo[models.QuestionTopic](db),
	}
}

// BindAll 批量创建问题与话题的关联
func (d *QuestionTopic) BindAll(ctx context.Context, questionID uint64, topicIDs []uint64) error {
	if len(topicIDs) == 0 {
		return nil
	}
	bindings := make([]*models.QuestionTopic, 0, len(topicIDs))
	for _, topicID := range topicIDs {
		bindings = append(bindings, &models.QuestionTopic{
			QuestionID: questionID,
			TopicID:    topicID,
		})
	}
	return d.Db.WithContext(ctx).Create(&bindings).Error
}

// UnbindAll 删除问题的所有话题关联，配合 BindAll 实现整体替换
func (d *QuestionTopic) UnbindAll(ctx context.Context, questionID uint64) error {
	return d.Db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&models.QuestionTopic{}).Error
}

// ListTopicsFor 查询问题绑定的所有话题
func (d *QuestionTopic) ListTopicsFor(ctx context.Context, questionID uint64) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Joins("JOIN question_topic_binding qt ON topic.id = qt.topic_id").
		Where("qt.question_id = ?", questionID).
		Order("topic.follow_count DESC, topic.id DESC").
		Find(&topics).Error
	return topics, err
}
