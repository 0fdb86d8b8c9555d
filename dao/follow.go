package dao

import (
	"Nova/models"
	"context"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](db)}
}

func (d *FollowDAO) Exists(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

func (d *FollowDAO) Create(ctx context.Context, follow *models.Follow) error {
	return d.Db.WithContext(ctx).Create(follow).Error
}

func (d *FollowDAO) Delete(ctx context.Context, followerID, followingID uint64) (int64, error) {
	result := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	return result.RowsAffected, result.Error
}

// GetFollowingIDs 查询用户关注的所有用户ID，feed 的关注集合
func (d *FollowDAO) GetFollowingIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (d *FollowDAO) ListFollowing(ctx context.Context, followerID uint64, offset, limit int) ([]*models.Follow, error) {
	var follows []*models.Follow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&follows).Error
	return follows, err
}

func (d *FollowDAO) ListFollowers(ctx context.Context, followingID uint64, offset, limit int) ([]*models.Follow, error) {
	var follows []*models.Follow
	err := d.Db.WithContext(ctx).
		Where("following_id = ?", followingID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&follows).Error
	return follows, err
}

func (d *FollowDAO) CountFollowing(ctx context.Context, followerID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Count(&count).Error
	return count, err
}

func (d *FollowDAO) CountFollowers(ctx context.Context, followingID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", followingID).
		Count(&count).Error
	return count, err
}

type followCountRow struct {
	UserID uint64 `gorm:"column:user_id"`
	Total  int64  `gorm:"column:total"`
}

// BatchCountFollowers 批量统计粉丝数，关注列表组装用
func (d *FollowDAO) BatchCountFollowers(ctx context.Context, userIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64)
	if len(userIDs) == 0 {
		return result, nil
	}
	var rows []followCountRow
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Select("following_id AS user_id, COUNT(*) AS total").
		Where("following_id IN ?", userIDs).
		Group("following_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.UserID] = row.Total
	}
	return result, nil
}

// BatchCountFollowing 批量统计关注数
func (d *FollowDAO) BatchCountFollowing(ctx context.Context, userIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64)
	if len(userIDs) == 0 {
		return result, nil
	}
	var rows []followCountRow
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Select("follower_id AS user_id, COUNT(*) AS total").
		Where("follower_id IN ?", userIDs).
		Group("follower_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.UserID] = row.Total
	}
	return result, nil
}

// FindFollowingIn 在给定候选集里筛出 viewer 已关注的用户ID
func (d *FollowDAO) FindFollowingIn(ctx context.Context, followerID uint64, candidateIDs []uint64) ([]uint64, error) {
	if followerID == 0 || len(candidateIDs) == 0 {
		return nil, nil
	}
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id IN ?", followerID, candidateIDs).
		Pluck("following_id", &ids).Error
	return ids, err
}
