package service

import (
	"Nova/dao"
	"Nova/models"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID uint64, req *types.LikeRequest) (*types.LikeStatusResponse, error)
	Unlike(ctx context.Context, userID uint64, req *types.LikeRequest) (*types.LikeStatusResponse, error)
	Status(ctx context.Context, viewerID uint64, targetType string, targetID uint64) (*types.LikeStatusResponse, error)
}

type LikeService struct {
	LikeDAO *dao.LikeDAO
	Targets ITargetService
}

func (s *LikeService) Like(ctx context.Context, userID uint64, req *types.LikeRequest) (*types.LikeStatusResponse, error) {
	target, err := s.Targets.ResolveLikeTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	exists, err := s.LikeDAO.Exists(ctx, userID, target.Type, target.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = s.LikeDAO.Transaction(ctx, func(tx *gorm.DB) error {
			like := &models.Like{
				ID:         uint64(snowflake.GenID()),
				UserID:     userID,
				TargetType: target.Type,
				TargetID:   target.ID,
			}
			if err := s.LikeDAO.Create(tx, like); err != nil {
				return err
			}
			return target.Adjust(tx, dao.ColLikeCount, 1)
		})
		if err != nil {
			return nil, err
		}
	}

	count, err := s.likeCount(ctx, target)
	if err != nil {
		return nil, err
	}
	return &types.LikeStatusResponse{LikeCount: count, Liked: true}, nil
}

func (s *LikeService) Unlike(ctx context.Context, userID uint64, req *types.LikeRequest) (*types.LikeStatusResponse, error) {
	target, err := s.Targets.ResolveLikeTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	err = s.LikeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		rows, err := s.LikeDAO.Delete(tx, userID, target.Type, target.ID)
		if err != nil {
			return err
		}
		// 本来就没点过赞，什么都不用扣
		if rows == 0 {
			return nil
		}
		return target.Adjust(tx, dao.ColLikeCount, -1)
	})
	if err != nil {
		return nil, err
	}

	count, err := s.likeCount(ctx, target)
	if err != nil {
		return nil, err
	}
	return &types.LikeStatusResponse{LikeCount: count, Liked: false}, nil
}

func (s *LikeService) Status(ctx context.Context, viewerID uint64, targetType string, targetID uint64) (*types.LikeStatusResponse, error) {
	target, err := s.Targets.ResolveLikeTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}
	count, err := s.likeCount(ctx, target)
	if err != nil {
		return nil, err
	}
	liked := false
	if viewerID != 0 {
		liked, err = s.LikeDAO.Exists(ctx, viewerID, target.Type, target.ID)
		if err != nil {
			return nil, err
		}
	}
	return &types.LikeStatusResponse{LikeCount: count, Liked: liked}, nil
}

// likeCount 优先读内容行上的计数列，视频这类无计数列的目标退回数关系行
func (s *LikeService) likeCount(ctx context.Context, target *TargetContext) (int64, error) {
	if target.Counter == nil {
		return s.LikeDAO.Count(ctx, target.Type, target.ID)
	}
	return target.ReadCount(s.LikeDAO.Db.WithContext(ctx), dao.ColLikeCount)
}
