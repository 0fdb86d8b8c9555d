package service

import (
	"Nova/dao"
	"Nova/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{
		QuestionDAO:       dao.NewQuestionDAO(db),
		QuestionFollowDAO: dao.NewQuestionFollowDAO(db),
		UserDAO:           dao.NewUserDAO(db),
	}
}

func TestQuestionFollow_Ledger(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)
	ctx := context.Background()

	asker := seedUser(t, db, "asker")
	fan := seedUser(t, db, "fan")
	question := seedQuestion(t, db, asker.ID, time.Now())

	require.NoError(t, svc.FollowQuestion(ctx, fan.ID, question.ID))
	assert.Equal(t, int64(1), reloadQuestion(t, db, question.ID).FollowCount)

	// 重复关注不重复计数
	require.NoError(t, svc.FollowQuestion(ctx, fan.ID, question.ID))
	assert.Equal(t, int64(1), reloadQuestion(t, db, question.ID).FollowCount)

	var rows int64
	require.NoError(t, db.Model(&models.QuestionFollow{}).Where("question_id = ?", question.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	resp, err := svc.Get(ctx, fan.ID, question.ID)
	require.NoError(t, err)
	assert.True(t, resp.Following)

	require.NoError(t, svc.UnfollowQuestion(ctx, fan.ID, question.ID))
	assert.Equal(t, int64(0), reloadQuestion(t, db, question.ID).FollowCount)

	// 没关注时取关幂等
	require.NoError(t, svc.UnfollowQuestion(ctx, fan.ID, question.ID))
	assert.Equal(t, int64(0), reloadQuestion(t, db, question.ID).FollowCount)
}
