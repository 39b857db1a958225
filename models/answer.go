package models

import "time"

// Answer 回答表
type Answer struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID uint64 `gorm:"column:question_id;not null;index:idx_answer_question" json:"question_id"`
	AuthorID   uint64 `gorm:"column:author_id;not null;index:idx_answer_author" json:"author_id"`
	Content    string `gorm:"column:content;type:text;not null" json:"content"`

	VoteCount    uint32 `gorm:"column:vote_count;default:0" json:"vote_count"`
	CommentCount uint32 `gorm:"column:comment_count;default:0" json:"comment_count"`

	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (Answer) TableName() string {
	return "answer"
}
