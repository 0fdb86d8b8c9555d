package dao

import (
	"Nova/models"
	"context"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

func (d *LikeDAO) Exists(ctx context.Context, userID uint64, targetType string, targetID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID)
}

func (d *LikeDAO) Create(tx *gorm.DB, like *models.Like) error {
	return tx.Create(like).Error
}

func (d *LikeDAO) Delete(tx *gorm.DB, userID uint64, targetType string, targetID uint64) (int64, error) {
	result := tx.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&models.Like{})
	return result.RowsAffected, result.Error
}

func (d *LikeDAO) Count(ctx context.Context, targetType string, targetID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

// BatchCheckLiked 批量查询点赞状态，整页评论一次查完
func (d *LikeDAO) BatchCheckLiked(ctx context.Context, userID uint64, targetType string, targetIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool)
	if userID == 0 || len(targetIDs) == 0 {
		return result, nil
	}

	var likes []*models.Like
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id IN ?", userID, targetType, targetIDs).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		result[like.TargetID] = true
	}
	return result, nil
}
