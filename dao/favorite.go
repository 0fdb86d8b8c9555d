package dao

import (
	"Nova/models"
	"context"

	"gorm.io/gorm"
)

type FavoriteDAO struct {
	Repo[models.Favorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{Repo: NewRepo[models.Favorite](db)}
}

func (d *FavoriteDAO) Exists(ctx context.Context, userID uint64, targetType string, targetID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID)
}

func (d *FavoriteDAO) Create(tx *gorm.DB, favorite *models.Favorite) error {
	return tx.Create(favorite).Error
}

func (d *FavoriteDAO) Delete(tx *gorm.DB, userID uint64, targetType string, targetID uint64) (int64, error) {
	result := tx.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}

// ListByUser 用户收藏列表，targetType 为空表示不过滤类型
func (d *FavoriteDAO) ListByUser(ctx context.Context, userID uint64, targetType string, offset, limit int) ([]*models.Favorite, error) {
	query := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if targetType != "" {
		query = query.Where("target_type = ?", targetType)
	}

	var favorites []*models.Favorite
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&favorites).Error
	return favorites, err
}

func (d *FavoriteDAO) CountByUser(ctx context.Context, userID uint64, targetType string) (int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID)
	if targetType != "" {
		query = query.Where("target_type = ?", targetType)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
