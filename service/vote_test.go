package service

import (
	"Nova/models"
	"Nova/pkg/response"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVote_Transitions(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	voter := seedUser(t, db, "voter")
	question := seedQuestion(t, db, author.ID, time.Now())
	answer := seedAnswer(t, db, question.ID, author.ID)

	// 首投
	resp, err := svc.Vote(ctx, voter.ID, answer.ID, VoteUpvote)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UpvoteCount)
	assert.Equal(t, int64(0), resp.DownvoteCount)
	assert.True(t, resp.Upvoted)

	// 同向重复投票，计数不变
	resp, err = svc.Vote(ctx, voter.ID, answer.ID, VoteUpvote)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UpvoteCount)

	var rows int64
	require.NoError(t, db.Model(&models.AnswerVote{}).Where("answer_id = ?", answer.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	// 换边：旧列 -1 新列 +1
	resp, err = svc.Vote(ctx, voter.ID, answer.ID, VoteDownvote)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.UpvoteCount)
	assert.Equal(t, int64(1), resp.DownvoteCount)
	assert.True(t, resp.Downvoted)
	assert.False(t, resp.Upvoted)

	// 取消
	resp, err = svc.CancelVote(ctx, voter.ID, answer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.UpvoteCount)
	assert.Equal(t, int64(0), resp.DownvoteCount)
	assert.False(t, resp.Upvoted)
	assert.False(t, resp.Downvoted)

	// 没有投票时取消也是幂等成功
	resp, err = svc.CancelVote(ctx, voter.ID, answer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.DownvoteCount)
}

func TestVote_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	question := seedQuestion(t, db, author.ID, time.Now())
	answer := seedAnswer(t, db, question.ID, author.ID)

	_, err := svc.Vote(ctx, author.ID, answer.ID, "sideways")
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	_, err = svc.Vote(ctx, author.ID, 424242, VoteUpvote)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}
