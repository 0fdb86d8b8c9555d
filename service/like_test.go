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

func TestLikeUnlikeArticle(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())
	req := &types.LikeRequest{TargetType: TargetArticle, TargetID: article.ID}

	resp, err := svc.Like(ctx, viewer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.LikeCount)
	assert.True(t, resp.Liked)

	// 重复点赞：同样的结果，不出现重复行
	resp, err = svc.Like(ctx, viewer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.LikeCount)

	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Where("target_type = ? AND target_id = ?", TargetArticle, article.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	resp, err = svc.Unlike(ctx, viewer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.LikeCount)
	assert.False(t, resp.Liked)

	// 连续取消两次安全
	resp, err = svc.Unlike(ctx, viewer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.LikeCount)
	assert.Equal(t, int64(0), reloadArticle(t, db, article.ID).LikeCount)
}

func TestLikeVideo_NoCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()
	viewer := seedUser(t, db, "viewer")

	// 视频没有内容行，点赞只落关系表，计数来自关系行数
	req := &types.LikeRequest{TargetType: TargetVideo, TargetID: 777}
	resp, err := svc.Like(ctx, viewer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.LikeCount)

	other := seedUser(t, db, "other")
	resp, err = svc.Like(ctx, other.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.LikeCount)

	resp, err = svc.Unlike(ctx, viewer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.LikeCount)
}

func TestLike_ClosedSet(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()
	viewer := seedUser(t, db, "viewer")

	_, err := svc.Like(ctx, viewer.ID, &types.LikeRequest{TargetType: "podcast", TargetID: 1})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestLikeStatus_Anonymous(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())

	_, err := svc.Like(ctx, viewer.ID, &types.LikeRequest{TargetType: TargetArticle, TargetID: article.ID})
	require.NoError(t, err)

	status, err := svc.Status(ctx, 0, TargetArticle, article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.LikeCount)
	assert.False(t, status.Liked)

	status, err = svc.Status(ctx, viewer.ID, TargetArticle, article.ID)
	require.NoError(t, err)
	assert.True(t, status.Liked)
}
