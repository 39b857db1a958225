package types

import "time"

// CreateCommentRequest 发表评论请求，parent_id 非空表示回复某条评论
type CreateCommentRequest struct {
	AnswerID uint64  `json:"answer_id"`
	Content  string  `json:"content"`
	ParentID *uint64 `json:"parent_id"`
}

// UpdateCommentRequest 更新评论请求
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentParentStub 被回复评论的最小引用，避免无限嵌套
type CommentParentStub struct {
	ID     uint64       `json:"id"`
	Author *UserProfile `json:"author"`
}

// CommentNode 评论树节点
// 只有根节点的 Replies 会被填充，展示层固定两级
type CommentNode struct {
	ID         uint64             `json:"id"`
	AnswerID   uint64             `json:"answer_id"`
	AuthorID   uint64             `json:"author_id"`
	ParentID   *uint64            `json:"parent_id"`
	Content    string             `json:"content"`
	VoteCount  uint32             `json:"vote_count"`
	CreateTime time.Time          `json:"created_at"`
	UpdateTime time.Time          `json:"updated_at"`
	Author     *UserProfile       `json:"author"`
	Parent     *CommentParentStub `json:"parent,omitempty"`
	Replies    []*CommentNode     `json:"replies"`
}

// CreateCommentResponse 发表评论响应
type CreateCommentResponse struct {
	ID uint64 `json:"id"`
}
