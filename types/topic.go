package types

// CreateTopicRequest 创建话题请求，同名话题直接返回已存在的
type CreateTopicRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TopicInfo 话题信息
type TopicInfo struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	FollowCount   uint32 `json:"follow_count"`
	QuestionCount uint32 `json:"question_count"`
	IsFollowed    bool   `json:"is_followed"`
}
