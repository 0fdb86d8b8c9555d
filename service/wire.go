package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(TargetService), "*"),
	wire.Bind(new(ITargetService), new(*TargetService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(ArticleService), "*"),
	wire.Bind(new(IArticleService), new(*ArticleService)),

	wire.Struct(new(QuestionService), "*"),
	wire.Bind(new(IQuestionService), new(*QuestionService)),

	wire.Struct(new(AnswerService), "*"),
	wire.Bind(new(IAnswerService), new(*AnswerService)),
)
