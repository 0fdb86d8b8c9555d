package service

import (
	"Nova/pkg/response"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTargets(t *testing.T) {
	db := newTestDB(t)
	svc := newTargetService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	article := seedArticle(t, db, author.ID, time.Now())
	question := seedQuestion(t, db, author.ID, time.Now())
	answer := seedAnswer(t, db, question.ID, author.ID)

	target, err := svc.ResolveCommentTarget(ctx, TargetArticle, article.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, target.OwnerID)
	assert.NotNil(t, target.Counter)

	target, err = svc.ResolveCommentTarget(ctx, TargetAnswer, answer.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, target.OwnerID)

	// 点赞集合里的 video 没有内容行也没有计数句柄
	target, err = svc.ResolveLikeTarget(ctx, TargetVideo, 42)
	require.NoError(t, err)
	assert.Nil(t, target.Counter)
	assert.Zero(t, target.OwnerID)
}

func TestResolveTarget_ClosedSets(t *testing.T) {
	db := newTestDB(t)
	svc := newTargetService(db)
	ctx := context.Background()

	var be *response.BizError

	// 评论不支持 video
	_, err := svc.ResolveCommentTarget(ctx, TargetVideo, 1)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	_, err = svc.ResolveFavoriteTarget(ctx, TargetVideo, 1)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	_, err = svc.ResolveLikeTarget(ctx, "unknown", 1)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestResolveTarget_SoftDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := newTargetService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	article := seedArticle(t, db, author.ID, time.Now())
	now := time.Now()
	require.NoError(t, db.Model(article).Update("deleted_at", &now).Error)

	_, err := svc.ResolveCommentTarget(ctx, TargetArticle, article.ID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
	assert.True(t, response.IsNotFound(err))
}
