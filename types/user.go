package types

// UserProfile 用户公开信息
type UserProfile struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
