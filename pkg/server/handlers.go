package server

import (
	"StudyHub/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Topic    *handler.Topic
	Question *handler.Question
	Answer   *handler.Answer
	Comment  *handler.Comment
	Search   *handler.Search
}
