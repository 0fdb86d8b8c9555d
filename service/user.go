package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/response"
	"Nova/types"
	"context"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID uint64) (*models.User, error)
	BatchGetSummaries(ctx context.Context, userIDs []uint64) (map[uint64]types.UserSummary, error)
}

type UserService struct {
	UserDAO   *dao.UserDAO
	FollowDAO *dao.FollowDAO
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UserDAO.GetByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("用户不存在")
		}
		return nil, err
	}
	return user, nil
}

// BatchGetSummaries 一次取回一批作者摘要，评论树和内容流拼装时用
func (s *UserService) BatchGetSummaries(ctx context.Context, userIDs []uint64) (map[uint64]types.UserSummary, error) {
	users, err := s.UserDAO.BatchGetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	summaries := make(map[uint64]types.UserSummary, len(users))
	for id, u := range users {
		summaries[id] = types.UserSummary{ID: u.ID, Nickname: u.Nickname, Avatar: u.Avatar}
	}
	return summaries, nil
}
