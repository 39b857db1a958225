package models

import "time"

// Question 问题表（帖子）
type Question struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID uint64 `gorm:"column:author_id;not null;index:idx_question_author" json:"author_id"`
	Title    string `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Content  string `gorm:"column:content;type:text" json:"content"`
	// 匿名发布时展示层不返回作者信息
	Anonymous bool `gorm:"column:anonymous;default:false" json:"anonymous"`

	ViewCount   uint32 `gorm:"column:view_count;default:0" json:"view_count"`
	AnswerCount uint32 `gorm:"column:answer_count;default:0" json:"answer_count"`
	FollowCount uint32 `gorm:"column:follow_count;default:0" json:"follow_count"`

	CreateTime time.Time `gorm:"column:create_time;autoCreateTime;index:idx_question_create_time" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (Question) TableName() string {
	return "question"
}

// QuestionFollow 问题关注表，列表查询会联这张表，
// 写入在关注功能上线前由外部导入
type QuestionFollow struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID uint64    `gorm:"column:question_id;uniqueIndex:uk_question_follow;not null" json:"question_id"`
	UserID     uint64    `gorm:"column:user_id;uniqueIndex:uk_question_follow;not null;index:idx_qf_user_id" json:"user_id"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
}

func (QuestionFollow) TableName() string {
	return "question_follow"
}
