package types

import "time"

type ArticleRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Summary    string `json:"summary"`
	CoverImage string `json:"cover_image"`
}

type ArticleResponse struct {
	ID            uint64      `json:"id"`
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	CoverImage    string      `json:"cover_image,omitempty"`
	Content       string      `json:"content"`
	ViewCount     int64       `json:"view_count"`
	LikeCount     int64       `json:"like_count"`
	CommentCount  int64       `json:"comment_count"`
	FavoriteCount int64       `json:"favorite_count"`
	Author        UserSummary `json:"author"`
	CreatedAt     time.Time   `json:"created_at"`
}
