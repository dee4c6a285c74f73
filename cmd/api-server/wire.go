//go:build wireinject
// +build wireinject

package main

import (
	"Pulse/config"
	"Pulse/dao"
	"Pulse/handler"
	"Pulse/pkg/database"
	"Pulse/pkg/server"
	"Pulse/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		server.NewGinEngine,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Comment), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
