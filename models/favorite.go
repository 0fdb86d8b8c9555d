package models

import "time"

// Favorite 收藏关系，存在即收藏
type Favorite struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint64    `gorm:"column:user_id;index:idx_fav_uniq,unique" json:"user_id"`
	TargetType string    `gorm:"column:target_type;type:varchar(20);index:idx_fav_uniq,unique" json:"target_type"`
	TargetID   uint64    `gorm:"column:target_id;index:idx_fav_uniq,unique" json:"target_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
