package models

import "time"

// Comment 评论表，parent_id 为空表示回答下的一级评论
type Comment struct {
	ID       uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AnswerID uint64  `gorm:"column:answer_id;not null;index:idx_comment_answer" json:"answer_id"`
	AuthorID uint64  `gorm:"column:author_id;not null;index:idx_comment_author" json:"author_id"`
	ParentID *uint64 `gorm:"column:parent_id" json:"parent_id"`
	Content  string  `gorm:"column:content;type:text;not null" json:"content"`

	VoteCount uint32 `gorm:"column:vote_count;default:0" json:"vote_count"`

	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (Comment) TableName() string {
	return "comment"
}
