package types

import "time"

// FeedContent 按内容类型取值；对该类型无意义的字段保持 nil，
// 消费方据此区分“为 0”和“不适用”
type FeedContent struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	CoverImage   string `json:"cover_image,omitempty"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    *int64 `json:"like_count,omitempty"`
	CommentCount *int64 `json:"comment_count,omitempty"`
	FollowCount  *int64 `json:"follow_count,omitempty"`
	AnswerCount  *int64 `json:"answer_count,omitempty"`
}

type FeedItem struct {
	Type      string      `json:"type"`
	Content   FeedContent `json:"content"`
	Author    UserSummary `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
}
