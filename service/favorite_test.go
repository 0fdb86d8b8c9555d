package service

import (
	"Nova/models"
	"Nova/pkg/response"
	"Nova/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteUnfavorite(t *testing.T) {
	db := newTestDB(t)
	svc := newFavoriteService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())
	req := &types.FavoriteRequest{TargetType: TargetArticle, TargetID: article.ID}

	require.NoError(t, svc.Favorite(ctx, viewer.ID, req))
	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).FavoriteCount)

	// 重复收藏幂等
	require.NoError(t, svc.Favorite(ctx, viewer.ID, req))
	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).FavoriteCount)

	var rows int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("user_id = ?", viewer.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, svc.Unfavorite(ctx, viewer.ID, req))
	assert.Equal(t, int64(0), reloadArticle(t, db, article.ID).FavoriteCount)

	require.NoError(t, svc.Unfavorite(ctx, viewer.ID, req))
	assert.Equal(t, int64(0), reloadArticle(t, db, article.ID).FavoriteCount)
}

func TestFavorite_ClosedSet(t *testing.T) {
	db := newTestDB(t)
	svc := newFavoriteService(db)
	ctx := context.Background()
	viewer := seedUser(t, db, "viewer")

	// 收藏的目标集合不含 video
	err := svc.Favorite(ctx, viewer.ID, &types.FavoriteRequest{TargetType: TargetVideo, TargetID: 1})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestFavoriteList(t *testing.T) {
	db := newTestDB(t)
	svc := newFavoriteService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())
	question := seedQuestion(t, db, author.ID, time.Now())
	answer := seedAnswer(t, db, question.ID, author.ID)

	require.NoError(t, svc.Favorite(ctx, viewer.ID, &types.FavoriteRequest{TargetType: TargetArticle, TargetID: article.ID}))
	require.NoError(t, svc.Favorite(ctx, viewer.ID, &types.FavoriteRequest{TargetType: TargetAnswer, TargetID: answer.ID}))

	result, err := svc.ListByUser(ctx, viewer.ID, "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)

	onlyArticles, err := svc.ListByUser(ctx, viewer.ID, TargetArticle, 1, 20)
	require.NoError(t, err)
	require.Len(t, onlyArticles.Items, 1)
	assert.Equal(t, article.ID, onlyArticles.Items[0].Target.ID)
	assert.Equal(t, "author", onlyArticles.Items[0].Target.AuthorName)
}
