package types

// SearchRequest 全局搜索请求
// Type 取 question / topic / user，为空或 all 时三类一起查
type SearchRequest struct {
	Keyword  string `form:"keyword"`
	Type     string `form:"type"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// SearchResult 全局搜索结果，按实体类型分组
type SearchResult struct {
	Questions []*QuestionView `json:"questions,omitempty"`
	Topics    []TopicInfo     `json:"topics,omitempty"`
	Users     []UserProfile   `json:"users,omitempty"`
}
