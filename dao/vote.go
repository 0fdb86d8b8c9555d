package dao

import (
	"Nova/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AnswerVoteDAO struct {
	Repo[models.AnswerVote]
}

func NewAnswerVoteDAO(db *gorm.DB) *AnswerVoteDAO {
	return &AnswerVoteDAO{Repo: NewRepo[models.AnswerVote](db)}
}

// Find 查询用户在某回答上的投票，不存在返回 nil
func (d *AnswerVoteDAO) Find(ctx context.Context, answerID, userID uint64) (*models.AnswerVote, error) {
	var vote models.AnswerVote
	err := d.Db.WithContext(ctx).
		Where("answer_id = ? AND user_id = ?", answerID, userID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (d *AnswerVoteDAO) Create(tx *gorm.DB, vote *models.AnswerVote) error {
	return tx.Create(vote).Error
}

func (d *AnswerVoteDAO) UpdateType(tx *gorm.DB, voteID uint64, voteType string) error {
	return tx.Model(&models.AnswerVote{}).
		Where("id = ?", voteID).
		Update("vote_type", voteType).Error
}

func (d *AnswerVoteDAO) Delete(tx *gorm.DB, voteID uint64) error {
	return tx.Where("id = ?", voteID).Delete(&models.AnswerVote{}).Error
}

// BatchGetVoteTypes 批量查询用户在一页回答上的投票类型
func (d *AnswerVoteDAO) BatchGetVoteTypes(ctx context.Context, answerIDs []uint64, userID uint64) (map[uint64]string, error) {
	result := make(map[uint64]string)
	if userID == 0 || len(answerIDs) == 0 {
		return result, nil
	}

	var votes []*models.AnswerVote
	err := d.Db.WithContext(ctx).
		Where("answer_id IN ? AND user_id = ?", answerIDs, userID).
		Find(&votes).Error
	if err != nil {
		return nil, err
	}

	for _, vote := range votes {
		result[vote.AnswerID] = vote.VoteType
	}
	return result, nil
}
