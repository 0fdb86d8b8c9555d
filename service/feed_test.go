package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_EmptyFollowSet(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()
	viewer := seedUser(t, db, "viewer")

	result, err := svc.GetFeed(ctx, viewer.ID, FeedTypeAll, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.Pagination.Total)
}

func TestFeed_MergedOrderAndTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	viewer := seedUser(t, db, "viewer")
	writer := seedUser(t, db, "writer")
	asker := seedUser(t, db, "asker")
	follow(t, db, viewer.ID, writer.ID)
	follow(t, db, viewer.ID, asker.ID)

	// 两个来源各 3 条，时间戳交错
	base := time.Now().Add(-time.Hour)
	seedArticle(t, db, writer.ID, base.Add(1*time.Minute))
	seedArticle(t, db, writer.ID, base.Add(3*time.Minute))
	seedArticle(t, db, writer.ID, base.Add(5*time.Minute))
	seedQuestion(t, db, asker.ID, base.Add(2*time.Minute))
	seedQuestion(t, db, asker.ID, base.Add(4*time.Minute))
	seedQuestion(t, db, asker.ID, base.Add(6*time.Minute))

	result, err := svc.GetFeed(ctx, viewer.ID, FeedTypeAll, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Items, 6)
	assert.Equal(t, int64(6), result.Pagination.Total)

	for i := 1; i < len(result.Items); i++ {
		assert.False(t, result.Items[i-1].CreatedAt.Before(result.Items[i].CreatedAt))
	}
	// 交错排列：question, article, question, article...
	assert.Equal(t, "question", result.Items[0].Type)
	assert.Equal(t, TargetArticle, result.Items[1].Type)

	// 对类型无意义的计数字段保持 nil
	for _, item := range result.Items {
		switch item.Type {
		case TargetArticle:
			assert.NotNil(t, item.Content.LikeCount)
			assert.Nil(t, item.Content.AnswerCount)
		case "question":
			assert.NotNil(t, item.Content.AnswerCount)
			assert.Nil(t, item.Content.LikeCount)
		}
	}
}

func TestFeed_SingleSourceModes(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	viewer := seedUser(t, db, "viewer")
	writer := seedUser(t, db, "writer")
	follow(t, db, viewer.ID, writer.ID)

	base := time.Now().Add(-time.Hour)
	seedArticle(t, db, writer.ID, base)
	seedArticle(t, db, writer.ID, base.Add(time.Minute))
	seedQuestion(t, db, writer.ID, base.Add(2*time.Minute))

	articles, err := svc.GetFeed(ctx, viewer.ID, FeedTypeArticles, 1, 10)
	require.NoError(t, err)
	assert.Len(t, articles.Items, 2)
	assert.Equal(t, int64(2), articles.Pagination.Total)

	questions, err := svc.GetFeed(ctx, viewer.ID, FeedTypeQuestions, 1, 10)
	require.NoError(t, err)
	assert.Len(t, questions.Items, 1)
	assert.Equal(t, int64(1), questions.Pagination.Total)

	// 视频流还没有内容来源，即使有关注也返回空页
	videos, err := svc.GetFeed(ctx, viewer.ID, FeedTypeVideos, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, videos.Items)
	assert.Equal(t, int64(0), videos.Pagination.Total)
}

func TestFeed_PageSlice(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	viewer := seedUser(t, db, "viewer")
	writer := seedUser(t, db, "writer")
	follow(t, db, viewer.ID, writer.ID)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedArticle(t, db, writer.ID, base.Add(time.Duration(i)*time.Minute))
	}

	page2, err := svc.GetFeed(ctx, viewer.ID, FeedTypeAll, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)
	assert.Equal(t, int64(5), page2.Pagination.Total)

	// 越过窗口末尾时返回剩余部分
	page3, err := svc.GetFeed(ctx, viewer.ID, FeedTypeAll, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3.Items, 1)
}
