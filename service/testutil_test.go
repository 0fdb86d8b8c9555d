package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/snowflake"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Question{},
		&models.QuestionFollow{},
		&models.Answer{},
		&models.AnswerVote{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Notification{},
	)
	require.NoError(t, err)
	return db
}

func newTargetService(db *gorm.DB) *TargetService {
	return &TargetService{
		ArticleDAO: dao.NewArticleDAO(db),
		AnswerDAO:  dao.NewAnswerDAO(db),
	}
}

func newCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		CommentDAO:      dao.NewCommentDAO(db),
		LikeDAO:         dao.NewLikeDAO(db),
		UserDAO:         dao.NewUserDAO(db),
		NotificationDAO: dao.NewNotificationDAO(db),
		LikedCache:      nil,
		Targets:         newTargetService(db),
	}
}

func newLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		LikeDAO: dao.NewLikeDAO(db),
		Targets: newTargetService(db),
	}
}

func newFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		FavoriteDAO: dao.NewFavoriteDAO(db),
		ArticleDAO:  dao.NewArticleDAO(db),
		AnswerDAO:   dao.NewAnswerDAO(db),
		UserDAO:     dao.NewUserDAO(db),
		Targets:     newTargetService(db),
	}
}

func newVoteService(db *gorm.DB) *VoteService {
	return &VoteService{
		AnswerDAO: dao.NewAnswerDAO(db),
		VoteDAO:   dao.NewAnswerVoteDAO(db),
	}
}

func newFeedService(db *gorm.DB) *FeedService {
	return &FeedService{
		FollowDAO:   dao.NewFollowDAO(db),
		ArticleDAO:  dao.NewArticleDAO(db),
		QuestionDAO: dao.NewQuestionDAO(db),
		UserDAO:     dao.NewUserDAO(db),
	}
}

func newFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		FollowDAO:       dao.NewFollowDAO(db),
		UserDAO:         dao.NewUserDAO(db),
		NotificationDAO: dao.NewNotificationDAO(db),
	}
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uint64(snowflake.GenID()),
		Username: nickname,
		Nickname: nickname,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedArticle(t *testing.T, db *gorm.DB, authorID uint64, createdAt time.Time) *models.Article {
	t.Helper()
	article := &models.Article{
		ID:        uint64(snowflake.GenID()),
		UserID:    authorID,
		Title:     "title",
		Content:   "content",
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func seedQuestion(t *testing.T, db *gorm.DB, authorID uint64, createdAt time.Time) *models.Question {
	t.Helper()
	question := &models.Question{
		ID:          uint64(snowflake.GenID()),
		UserID:      authorID,
		Title:       "question",
		Description: "description",
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func seedAnswer(t *testing.T, db *gorm.DB, questionID, authorID uint64) *models.Answer {
	t.Helper()
	answer := &models.Answer{
		ID:         uint64(snowflake.GenID()),
		QuestionID: questionID,
		UserID:     authorID,
		Content:    "answer",
	}
	require.NoError(t, db.Create(answer).Error)
	return answer
}

func reloadArticle(t *testing.T, db *gorm.DB, id uint64) *models.Article {
	t.Helper()
	var article models.Article
	require.NoError(t, db.First(&article, "id = ?", id).Error)
	return &article
}

func reloadAnswer(t *testing.T, db *gorm.DB, id uint64) *models.Answer {
	t.Helper()
	var answer models.Answer
	require.NoError(t, db.First(&answer, "id = ?", id).Error)
	return &answer
}

func reloadComment(t *testing.T, db *gorm.DB, id uint64) *models.Comment {
	t.Helper()
	var comment models.Comment
	require.NoError(t, db.First(&comment, "id = ?", id).Error)
	return &comment
}

func follow(t *testing.T, db *gorm.DB, followerID, followingID uint64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Follow{
		ID:          uint64(snowflake.GenID()),
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error)
}
