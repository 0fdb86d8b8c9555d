package server

import (
	"Nova/handler"
)

type Handlers struct {
	User         *handler.UserHandler
	Article      *handler.ArticleHandler
	Question     *handler.QuestionHandler
	Answer       *handler.AnswerHandler
	Comments     *handler.CommentsHandler
	Like         *handler.LikeHandler
	Favorite     *handler.FavoriteHandler
	Feed         *handler.FeedHandler
	Follow       *handler.FollowHandler
	Notification *handler.NotificationHandler
}
