package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(50);uniqueIndex;not null" json:"username"`
	Nickname  string    `gorm:"column:nickname;type:varchar(50);not null;default:''" json:"nickname"`
	Avatar    string    `gorm:"column:avatar;type:varchar(500);not null;default:''" json:"avatar"`
	Bio       string    `gorm:"column:bio;type:varchar(200);not null;default:''" json:"bio"`
	Status    int8      `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
