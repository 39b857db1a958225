package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewTopic,
	NewQuestion,
	NewQuestionTopic,
	NewAnswer,
	NewComment,
)
