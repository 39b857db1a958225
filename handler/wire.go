package handler

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Auth), "*"),
	wire.Struct(new(User), "*"),
	wire.Struct(new(Topic), "*"),
	wire.Struct(new(Question), "*"),
	wire.Struct(new(Answer), "*"),
	wire.Struct(new(Comment), "*"),
	wire.Struct(new(Search), "*"),
)
