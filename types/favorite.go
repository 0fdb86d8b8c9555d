package types

import "time"

type FavoriteRequest struct {
	TargetType string `json:"target_type" binding:"required"`
	TargetID   uint64 `json:"target_id" binding:"required"`
}

type FavoriteTargetInfo struct {
	ID         uint64     `json:"id"`
	Title      string     `json:"title"`
	AuthorName string     `json:"author_name"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

type FavoriteItem struct {
	ID         uint64             `json:"id"`
	TargetType string             `json:"target_type"`
	Target     FavoriteTargetInfo `json:"target"`
	CreatedAt  time.Time          `json:"created_at"`
}
