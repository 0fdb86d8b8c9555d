package models

import "time"

// Article 文章表，计数列与关联表同步维护，读路径不做 COUNT
type Article struct {
	ID            uint64     `gorm:"column:id;primaryKey" json:"id"`
	UserID        uint64     `gorm:"column:user_id;not null;index:idx_user_created" json:"user_id"`
	Title         string     `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Summary       string     `gorm:"column:summary;type:varchar(200);not null;default:''" json:"summary"`
	CoverImage    string     `gorm:"column:cover_image;type:varchar(500);not null;default:''" json:"cover_image"`
	Content       string     `gorm:"column:content;type:text;not null" json:"content"`
	Status        int8       `gorm:"column:status;not null;default:1" json:"status"`
	ViewCount     int64      `gorm:"column:view_count;not null;default:0" json:"view_count"`
	LikeCount     int64      `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount  int64      `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	FavoriteCount int64      `gorm:"column:favorite_count;not null;default:0" json:"favorite_count"`
	DeletedAt     *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime;index:idx_user_created" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}
