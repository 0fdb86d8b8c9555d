package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/response"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"
	"time"

	"gorm.io/gorm"
)

var _ IAnswerService = (*AnswerService)(nil)

type IAnswerService interface {
	Create(ctx context.Context, userID, questionID uint64, req *types.AnswerRequest) (*types.AnswerResponse, error)
	Update(ctx context.Context, userID, answerID uint64, req *types.AnswerRequest) error
	Delete(ctx context.Context, userID, answerID uint64) error
	ListByQuestion(ctx context.Context, viewerID, questionID uint64, sort string, page, pageSize int) (*types.PageResult[*types.AnswerDetail], error)
}

type AnswerService struct {
	AnswerDAO   *dao.AnswerDAO
	QuestionDAO *dao.QuestionDAO
	VoteDAO     *dao.AnswerVoteDAO
	UserDAO     *dao.UserDAO
}

func (s *AnswerService) Create(ctx context.Context, userID, questionID uint64, req *types.AnswerRequest) (*types.AnswerResponse, error) {
	question, err := s.QuestionDAO.GetByID(ctx, questionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("问题不存在")
		}
		return nil, err
	}

	answer := &models.Answer{
		ID:         uint64(snowflake.GenID()),
		QuestionID: question.ID,
		UserID:     userID,
		Content:    req.Content,
	}
	err = s.AnswerDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		return dao.AdjustCounter(tx, &models.Question{}, question.ID, dao.ColAnswerCount, 1)
	})
	if err != nil {
		return nil, err
	}
	return &types.AnswerResponse{ID: answer.ID, Content: answer.Content, CreatedAt: answer.CreatedAt}, nil
}

func (s *AnswerService) Update(ctx context.Context, userID, answerID uint64, req *types.AnswerRequest) error {
	answer, err := s.AnswerDAO.GetByID(ctx, answerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NewNotFound("回答不存在")
		}
		return err
	}
	if answer.UserID != userID {
		return response.NewForbidden("只能修改自己的回答")
	}
	return s.AnswerDAO.UpdateContent(ctx, answerID, req.Content)
}

// Delete 软删回答并扣减问题的回答数；该回答如果是最佳答案，同时清掉引用
func (s *AnswerService) Delete(ctx context.Context, userID, answerID uint64) error {
	answer, err := s.AnswerDAO.GetByID(ctx, answerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if answer.UserID != userID {
		return response.NewForbidden("只能删除自己的回答")
	}

	return s.AnswerDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.AnswerDAO.SoftDelete(tx, answerID, time.Now()); err != nil {
			return err
		}
		if err := dao.AdjustCounter(tx, &models.Question{}, answer.QuestionID, dao.ColAnswerCount, -1); err != nil {
			return err
		}
		return tx.Model(&models.Question{}).
			Where("id = ? AND best_answer_id = ?", answer.QuestionID, answerID).
			Update("best_answer_id", nil).Error
	})
}

func (s *AnswerService) ListByQuestion(ctx context.Context, viewerID, questionID uint64, sort string, page, pageSize int) (*types.PageResult[*types.AnswerDetail], error) {
	if _, err := s.QuestionDAO.GetByID(ctx, questionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("问题不存在")
		}
		return nil, err
	}
	page, pageSize = normalizePage(page, pageSize)

	answers, err := s.AnswerDAO.ListByQuestion(ctx, questionID, sort, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.AnswerDAO.CountByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answerIDs := make([]uint64, 0, len(answers))
	authorIDs := make([]uint64, 0, len(answers))
	for _, a := range answers {
		answerIDs = append(answerIDs, a.ID)
		authorIDs = append(authorIDs, a.UserID)
	}
	// 查看者对整页回答的投票状态一次取回
	voteTypes := map[uint64]string{}
	if viewerID != 0 {
		voteTypes, err = s.VoteDAO.BatchGetVoteTypes(ctx, answerIDs, viewerID)
		if err != nil {
			return nil, err
		}
	}
	authors, err := s.UserDAO.BatchGetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.AnswerDetail, 0, len(answers))
	for _, a := range answers {
		item := &types.AnswerDetail{
			ID:            a.ID,
			Content:       a.Content,
			UpvoteCount:   a.UpvoteCount,
			DownvoteCount: a.DownvoteCount,
			CommentCount:  a.CommentCount,
			Best:          a.IsBest == 1,
			Upvoted:       voteTypes[a.ID] == VoteUpvote,
			Downvoted:     voteTypes[a.ID] == VoteDownvote,
			CreatedAt:     a.CreatedAt,
			Author:        types.UserSummary{ID: a.UserID},
		}
		if u, ok := authors[a.UserID]; ok {
			item.Author = types.UserSummary{ID: u.ID, Nickname: u.Nickname, Avatar: u.Avatar}
		}
		items = append(items, item)
	}
	return types.NewPageResult(items, page, pageSize, total), nil
}
