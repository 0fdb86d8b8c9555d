package dao

import (
	"Nova/models"
	"context"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

func (d *UserDAO) GetByID(ctx context.Context, userID uint64) (*models.User, error) {
	var user models.User
	err := d.Db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// BatchGetByIDs 批量查询用户，组装作者信息用
func (d *UserDAO) BatchGetByIDs(ctx context.Context, userIDs []uint64) (map[uint64]*models.User, error) {
	result := make(map[uint64]*models.User)
	if len(userIDs) == 0 {
		return result, nil
	}

	var users []*models.User
	err := d.Db.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		result[user.ID] = user
	}
	return result, nil
}

func (d *UserDAO) Create(ctx context.Context, user *models.User) error {
	return d.Db.WithContext(ctx).Create(user).Error
}
