//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewArticleDAO,
	NewQuestionDAO,
	NewQuestionFollowDAO,
	NewAnswerDAO,
	NewAnswerVoteDAO,
	NewCommentDAO,
	NewLikeDAO,
	NewFavoriteDAO,
	NewFollowDAO,
	NewNotificationDAO,
)
