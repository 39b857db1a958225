//go:build wireinject
// +build wireinject

package main

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/handler"
	"StudyHub/pkg/client"
	"StudyHub/pkg/database"
	"StudyHub/pkg/server"
	"StudyHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
