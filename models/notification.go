package models

import "time"

type Notification struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_notify_user_read" json:"user_id"` // 接收人
	SenderID   uint64    `gorm:"column:sender_id;not null" json:"sender_id"`
	Type       string    `gorm:"column:type;type:varchar(20);not null" json:"type"` // follow / comment
	Title      string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Content    string    `gorm:"column:content;type:varchar(500);not null;default:''" json:"content"`
	TargetType string    `gorm:"column:target_type;type:varchar(20);not null;default:''" json:"target_type"`
	TargetID   uint64    `gorm:"column:target_id;not null;default:0" json:"target_id"`
	Read       bool      `gorm:"column:is_read;not null;default:false;index:idx_notify_user_read" json:"read"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
