package models

import "time"

// Topic 话题表
type Topic struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:varchar(64);uniqueIndex:idx_topic_name;not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(255);default:''" json:"description"`

	// 统计数据，只通过计数操作维护，不做聚合回算
	FollowCount   uint32 `gorm:"column:follow_count;default:0" json:"follow_count"`
	QuestionCount uint32 `gorm:"column:question_count;default:0" json:"question_count"`

	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (Topic) TableName() string {
	return "topic"
}

// QuestionTopic 问题与话题的中间表
type QuestionTopic struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// 联合唯一索引：确保 (question_id, topic_id) 组合唯一
	QuestionID uint64 `gorm:"column:question_id;uniqueIndex:uk_question_topic;not null" json:"question_id"`
	TopicID    uint64 `gorm:"column:topic_id;uniqueIndex:uk_question_topic;not null;index:idx_qt_topic_id" json:"topic_id"`

	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
}

func (QuestionTopic) TableName() string {
	return "question_topic_binding"
}
