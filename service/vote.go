package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/response"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"

	"gorm.io/gorm"
)

const (
	VoteUpvote   = "upvote"
	VoteDownvote = "downvote"
)

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	Vote(ctx context.Context, userID, answerID uint64, voteType string) (*types.AnswerVoteResponse, error)
	CancelVote(ctx context.Context, userID, answerID uint64) (*types.AnswerVoteResponse, error)
}

type VoteService struct {
	AnswerDAO *dao.AnswerDAO
	VoteDAO   *dao.AnswerVoteDAO
}

func voteColumn(voteType string) string {
	if voteType == VoteUpvote {
		return dao.ColUpvoteCount
	}
	return dao.ColDownvoteCount
}

// Vote 实现 无/赞/踩 三态切换：首投 +1 新列，换边 -1 旧列 +1 新列，
// 重复同向投票不产生任何变更
func (s *VoteService) Vote(ctx context.Context, userID, answerID uint64, voteType string) (*types.AnswerVoteResponse, error) {
	if voteType != VoteUpvote && voteType != VoteDownvote {
		return nil, response.NewValidation("投票类型只能是 upvote 或 downvote")
	}

	answer, err := s.AnswerDAO.GetByID(ctx, answerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("回答不存在")
		}
		return nil, err
	}

	existing, err := s.VoteDAO.Find(ctx, answerID, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case existing == nil:
		err = s.AnswerDAO.Transaction(ctx, func(tx *gorm.DB) error {
			vote := &models.AnswerVote{
				ID:       uint64(snowflake.GenID()),
				AnswerID: answerID,
				UserID:   userID,
				VoteType: voteType,
			}
			if err := s.VoteDAO.Create(tx, vote); err != nil {
				return err
			}
			return dao.AdjustCounter(tx, &models.Answer{}, answerID, voteColumn(voteType), 1)
		})
	case existing.VoteType == voteType:
		// 同向重复投票是幂等成功
		err = nil
	default:
		err = s.AnswerDAO.Transaction(ctx, func(tx *gorm.DB) error {
			if err := s.VoteDAO.UpdateType(tx, existing.ID, voteType); err != nil {
				return err
			}
			if err := dao.AdjustCounter(tx, &models.Answer{}, answerID, voteColumn(existing.VoteType), -1); err != nil {
				return err
			}
			return dao.AdjustCounter(tx, &models.Answer{}, answerID, voteColumn(voteType), 1)
		})
	}
	if err != nil {
		return nil, err
	}

	return s.voteStatus(ctx, answer.ID, voteType)
}

func (s *VoteService) CancelVote(ctx context.Context, userID, answerID uint64) (*types.AnswerVoteResponse, error) {
	answer, err := s.AnswerDAO.GetByID(ctx, answerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("回答不存在")
		}
		return nil, err
	}

	existing, err := s.VoteDAO.Find(ctx, answerID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		err = s.AnswerDAO.Transaction(ctx, func(tx *gorm.DB) error {
			if err := s.VoteDAO.Delete(tx, existing.ID); err != nil {
				return err
			}
			return dao.AdjustCounter(tx, &models.Answer{}, answerID, voteColumn(existing.VoteType), -1)
		})
		if err != nil {
			return nil, err
		}
	}

	return s.voteStatus(ctx, answer.ID, "")
}

// voteStatus 回读回答行上的权威计数组装响应
func (s *VoteService) voteStatus(ctx context.Context, answerID uint64, currentType string) (*types.AnswerVoteResponse, error) {
	answer, err := s.AnswerDAO.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	return &types.AnswerVoteResponse{
		UpvoteCount:   answer.UpvoteCount,
		DownvoteCount: answer.DownvoteCount,
		Upvoted:       currentType == VoteUpvote,
		Downvoted:     currentType == VoteDownvote,
	}, nil
}
