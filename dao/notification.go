package dao

import (
	"Nova/models"
	"context"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

func (d *NotificationDAO) Create(ctx context.Context, notification *models.Notification) error {
	return d.Db.WithContext(ctx).Create(notification).Error
}

func (d *NotificationDAO) GetByID(ctx context.Context, notificationID uint64) (*models.Notification, error) {
	var notification models.Notification
	err := d.Db.WithContext(ctx).Where("id = ?", notificationID).First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (d *NotificationDAO) ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (d *NotificationDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (d *NotificationDAO) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (d *NotificationDAO) MarkRead(ctx context.Context, notificationID uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Update("is_read", true).Error
}

// MarkAllRead 返回置为已读的行数
func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	result := d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
