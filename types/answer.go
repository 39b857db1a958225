package types

import "time"

// CreateAnswerRequest 发布回答请求
type CreateAnswerRequest struct {
	QuestionID uint64 `json:"question_id"`
	Content    string `json:"content"`
}

// UpdateAnswerRequest 更新回答请求
type UpdateAnswerRequest struct {
	Content string `json:"content"`
}

// AnswerView 回答展示结构
type AnswerView struct {
	ID           uint64       `json:"id"`
	QuestionID   uint64       `json:"question_id"`
	AuthorID     uint64       `json:"author_id"`
	Content      string       `json:"content"`
	VoteCount    uint32       `json:"vote_count"`
	CommentCount uint32       `json:"comment_count"`
	IsVoted      bool         `json:"is_voted"`
	IsCollected  bool         `json:"is_collected"`
	CreateTime   time.Time    `json:"created_at"`
	UpdateTime   time.Time    `json:"updated_at"`
	Author       *UserProfile `json:"author"`
}

// CreateAnswerResponse 发布回答响应
type CreateAnswerResponse struct {
	ID uint64 `json:"id"`
}

// VoteResult 点赞响应，返回最新计数
type VoteResult struct {
	VoteCount uint32 `json:"vote_count"`
	IsVoted   bool   `json:"is_voted"`
}

// CollectResult 收藏响应
type CollectResult struct {
	IsCollected bool `json:"is_collected"`
}
