package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/log"
	"Nova/pkg/response"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"

	"go.uber.org/zap"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	ListFollowing(ctx context.Context, viewerID, userID uint64, page, pageSize int) (*types.PageResult[*types.FollowUserItem], error)
	ListFollowers(ctx context.Context, viewerID, userID uint64, page, pageSize int) (*types.PageResult[*types.FollowUserItem], error)
}

type FollowService struct {
	FollowDAO       *dao.FollowDAO
	UserDAO         *dao.UserDAO
	NotificationDAO *dao.NotificationDAO
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return response.NewValidation("不能关注自己")
	}
	if _, err := s.UserDAO.GetByID(ctx, followingID); err != nil {
		return response.NewNotFound("用户不存在")
	}

	exists, err := s.FollowDAO.Exists(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	follow := &models.Follow{
		ID:          uint64(snowflake.GenID()),
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := s.FollowDAO.Create(ctx, follow); err != nil {
		return err
	}

	notification := &models.Notification{
		ID:       uint64(snowflake.GenID()),
		UserID:   followingID,
		SenderID: followerID,
		Type:     "follow",
		Title:    "有人关注了你",
	}
	if err := s.NotificationDAO.Create(ctx, notification); err != nil {
		log.L.Warn("写入关注通知失败",
			zap.Uint64("follower_id", followerID),
			zap.Uint64("following_id", followingID),
			zap.Error(err))
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	// 本来就没关注也算成功
	_, err := s.FollowDAO.Delete(ctx, followerID, followingID)
	return err
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	return s.FollowDAO.Exists(ctx, followerID, followingID)
}

func (s *FollowService) ListFollowing(ctx context.Context, viewerID, userID uint64, page, pageSize int) (*types.PageResult[*types.FollowUserItem], error) {
	page, pageSize = normalizePage(page, pageSize)
	follows, err := s.FollowDAO.ListFollowing(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.FollowDAO.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowingID)
	}
	items, err := s.buildUserItems(ctx, viewerID, ids, follows)
	if err != nil {
		return nil, err
	}
	return types.NewPageResult(items, page, pageSize, total), nil
}

func (s *FollowService) ListFollowers(ctx context.Context, viewerID, userID uint64, page, pageSize int) (*types.PageResult[*types.FollowUserItem], error) {
	page, pageSize = normalizePage(page, pageSize)
	follows, err := s.FollowDAO.ListFollowers(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.FollowDAO.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowerID)
	}
	items, err := s.buildUserItems(ctx, viewerID, ids, follows)
	if err != nil {
		return nil, err
	}
	return types.NewPageResult(items, page, pageSize, total), nil
}

// buildUserItems 批量拼出用户条目：资料、双向计数和查看者是否已关注，
// 每类数据各查一次，不按行循环查询
func (s *FollowService) buildUserItems(ctx context.Context, viewerID uint64, ids []uint64, follows []*models.Follow) ([]*types.FollowUserItem, error) {
	users, err := s.UserDAO.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	followerCounts, err := s.FollowDAO.BatchCountFollowers(ctx, ids)
	if err != nil {
		return nil, err
	}
	followingCounts, err := s.FollowDAO.BatchCountFollowing(ctx, ids)
	if err != nil {
		return nil, err
	}
	viewerFollowing := make(map[uint64]bool)
	if viewerID != 0 {
		followed, err := s.FollowDAO.FindFollowingIn(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
		for _, id := range followed {
			viewerFollowing[id] = true
		}
	}

	items := make([]*types.FollowUserItem, 0, len(follows))
	for i, f := range follows {
		id := ids[i]
		item := &types.FollowUserItem{
			ID:             id,
			FollowerCount:  followerCounts[id],
			FollowingCount: followingCounts[id],
			Following:      viewerFollowing[id],
			FollowedAt:     f.CreatedAt,
		}
		if u, ok := users[id]; ok {
			item.Username = u.Username
			item.Nickname = u.Nickname
			item.Avatar = u.Avatar
			item.Bio = u.Bio
		}
		items = append(items, item)
	}
	return items, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
