//go:build wireinject
// +build wireinject

package main

import (
	"Nova/config"
	"Nova/dao"
	"Nova/dao/cache"
	"Nova/handler"
	"Nova/pkg/database"
	"Nova/pkg/server"
	"Nova/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		cache.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.UserHandler), "*"),
		wire.Struct(new(handler.ArticleHandler), "*"),
		wire.Struct(new(handler.QuestionHandler), "*"),
		wire.Struct(new(handler.AnswerHandler), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.LikeHandler), "*"),
		wire.Struct(new(handler.FavoriteHandler), "*"),
		wire.Struct(new(handler.FeedHandler), "*"),
		wire.Struct(new(handler.FollowHandler), "*"),
		wire.Struct(new(handler.NotificationHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
