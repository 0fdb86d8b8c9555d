package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/response"
	"Nova/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{
		AnswerDAO:   dao.NewAnswerDAO(db),
		QuestionDAO: dao.NewQuestionDAO(db),
		VoteDAO:     dao.NewAnswerVoteDAO(db),
		UserDAO:     dao.NewUserDAO(db),
	}
}

func reloadQuestion(t *testing.T, db *gorm.DB, id uint64) *models.Question {
	t.Helper()
	var question models.Question
	require.NoError(t, db.First(&question, "id = ?", id).Error)
	return &question
}

func TestAnswerLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	ctx := context.Background()

	asker := seedUser(t, db, "asker")
	writer := seedUser(t, db, "writer")
	question := seedQuestion(t, db, asker.ID, time.Now())

	answer, err := svc.Create(ctx, writer.ID, question.ID, &types.AnswerRequest{Content: "because"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), reloadQuestion(t, db, question.ID).AnswerCount)

	// 其他人不能改
	err = svc.Update(ctx, asker.ID, answer.ID, &types.AnswerRequest{Content: "hijack"})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)

	require.NoError(t, svc.Update(ctx, writer.ID, answer.ID, &types.AnswerRequest{Content: "updated"}))

	// 设为最佳答案后删除，引用要一并清掉
	require.NoError(t, db.Model(&models.Question{}).Where("id = ?", question.ID).Update("best_answer_id", answer.ID).Error)
	require.NoError(t, svc.Delete(ctx, writer.ID, answer.ID))

	reloaded := reloadQuestion(t, db, question.ID)
	assert.Equal(t, int64(0), reloaded.AnswerCount)
	assert.Nil(t, reloaded.BestAnswerID)

	// 再删一次幂等
	require.NoError(t, svc.Delete(ctx, writer.ID, answer.ID))
	assert.Equal(t, int64(0), reloadQuestion(t, db, question.ID).AnswerCount)
}

func TestListAnswers_SortAndVotes(t *testing.T) {
	db := newTestDB(t)
	svc := newAnswerService(db)
	votes := newVoteService(db)
	ctx := context.Background()

	asker := seedUser(t, db, "asker")
	voter := seedUser(t, db, "voter")
	question := seedQuestion(t, db, asker.ID, time.Now())

	a1 := seedAnswer(t, db, question.ID, asker.ID)
	a2 := seedAnswer(t, db, question.ID, asker.ID)

	_, err := votes.Vote(ctx, voter.ID, a2.ID, VoteUpvote)
	require.NoError(t, err)

	result, err := svc.ListByQuestion(ctx, voter.ID, question.ID, "", 1, 20)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	// 默认按赞数降序，查看者的投票状态批量带出
	assert.Equal(t, a2.ID, result.Items[0].ID)
	assert.True(t, result.Items[0].Upvoted)
	assert.Equal(t, a1.ID, result.Items[1].ID)
	assert.False(t, result.Items[1].Upvoted)
}
