package models

import "time"

// Follow 用户关注关系，follower 关注 following
type Follow struct {
	ID          uint64    `gorm:"column:id;primaryKey" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;index:idx_follow_uniq,unique" json:"follower_id"`
	FollowingID uint64    `gorm:"column:following_id;index:idx_follow_uniq,unique;index" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
