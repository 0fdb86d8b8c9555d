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

var _ IQuestionService = (*QuestionService)(nil)

type IQuestionService interface {
	Create(ctx context.Context, userID uint64, req *types.QuestionRequest) (*types.QuestionResponse, error)
	Get(ctx context.Context, viewerID, questionID uint64) (*types.QuestionResponse, error)
	FollowQuestion(ctx context.Context, userID, questionID uint64) error
	UnfollowQuestion(ctx context.Context, userID, questionID uint64) error
}

type QuestionService struct {
	QuestionDAO       *dao.QuestionDAO
	QuestionFollowDAO *dao.QuestionFollowDAO
	UserDAO           *dao.UserDAO
}

func (s *QuestionService) Create(ctx context.Context, userID uint64, req *types.QuestionRequest) (*types.QuestionResponse, error) {
	question := &models.Question{
		ID:          uint64(snowflake.GenID()),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.QuestionDAO.Create(ctx, question); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, question, false), nil
}

func (s *QuestionService) Get(ctx context.Context, viewerID, questionID uint64) (*types.QuestionResponse, error) {
	question, err := s.loadQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	following := false
	if viewerID != 0 {
		following, err = s.QuestionFollowDAO.Exists(ctx, questionID, viewerID)
		if err != nil {
			return nil, err
		}
	}
	return s.toResponse(ctx, question, following), nil
}

// FollowQuestion 关注行与 follow_count 在同一事务里配对变更
func (s *QuestionService) FollowQuestion(ctx context.Context, userID, questionID uint64) error {
	if _, err := s.loadQuestion(ctx, questionID); err != nil {
		return err
	}
	exists, err := s.QuestionFollowDAO.Exists(ctx, questionID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.QuestionDAO.Transaction(ctx, func(tx *gorm.DB) error {
		follow := &models.QuestionFollow{
			ID:         uint64(snowflake.GenID()),
			QuestionID: questionID,
			UserID:     userID,
		}
		if err := s.QuestionFollowDAO.Create(tx, follow); err != nil {
			return err
		}
		return dao.AdjustCounter(tx, &models.Question{}, questionID, dao.ColFollowCount, 1)
	})
}

func (s *QuestionService) UnfollowQuestion(ctx context.Context, userID, questionID uint64) error {
	if _, err := s.loadQuestion(ctx, questionID); err != nil {
		return err
	}
	return s.QuestionDAO.Transaction(ctx, func(tx *gorm.DB) error {
		rows, err := s.QuestionFollowDAO.Delete(tx, questionID, userID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		return dao.AdjustCounter(tx, &models.Question{}, questionID, dao.ColFollowCount, -1)
	})
}

func (s *QuestionService) loadQuestion(ctx context.Context, questionID uint64) (*models.Question, error) {
	question, err := s.QuestionDAO.GetByID(ctx, questionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("问题不存在")
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) toResponse(ctx context.Context, question *models.Question, following bool) *types.QuestionResponse {
	resp := &types.QuestionResponse{
		ID:          question.ID,
		Title:       question.Title,
		Description: question.Description,
		ViewCount:   question.ViewCount,
		AnswerCount: question.AnswerCount,
		FollowCount: question.FollowCount,
		Following:   following,
		CreatedAt:   question.CreatedAt,
		Author:      types.UserSummary{ID: question.UserID},
	}
	if author, err := s.UserDAO.GetByID(ctx, question.UserID); err == nil {
		resp.Author = types.UserSummary{ID: author.ID, Nickname: author.Nickname, Avatar: author.Avatar}
	}
	return resp
}
