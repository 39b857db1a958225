package types

import "time"

// CreateQuestionRequest 发布问题请求
type CreateQuestionRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Anonymous bool     `json:"anonymous"`
	TopicIDs  []uint64 `json:"topic_ids"`
}

// UpdateQuestionRequest 更新问题请求
// TopicIDs 为 nil 表示不动原有关联，传空数组则清空关联
type UpdateQuestionRequest struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	TopicIDs *[]uint64 `json:"topic_ids"`
}

// ListQuestionsRequest 问题列表请求
type ListQuestionsRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
	Keyword   string `form:"keyword"`
	TopicID   uint64 `form:"topicId"`
	Sort      string `form:"sort"`
	Following bool   `form:"following"`
}

// QuestionView 问题展示结构，匿名问题不返回作者信息
type QuestionView struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	ViewCount   uint32       `json:"view_count"`
	AnswerCount uint32       `json:"answer_count"`
	FollowCount uint32       `json:"follow_count"`
	IsFollowed  bool         `json:"is_followed"`
	CreateTime  time.Time    `json:"created_at"`
	UpdateTime  time.Time    `json:"updated_at"`
	Topics      []TopicInfo  `json:"topics"`
	Author      *UserProfile `json:"author"`
}

// CreateQuestionResponse 发布问题响应
type CreateQuestionResponse struct {
	ID uint64 `json:"id"`
}

// FollowResult 关注操作响应
type FollowResult struct {
	FollowCount uint32 `json:"follow_count"`
	IsFollowed  bool   `json:"is_followed"`
}
