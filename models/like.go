package models

import "time"

// Like 点赞关系，存在即点赞，无独立状态列
type Like struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint64    `gorm:"column:user_id;index:idx_like_uniq,unique" json:"user_id"`
	TargetType string    `gorm:"column:target_type;type:varchar(20);index:idx_like_uniq,unique" json:"target_type"`
	TargetID   uint64    `gorm:"column:target_id;index:idx_like_uniq,unique" json:"target_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
