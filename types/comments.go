package types

import "time"

type CreateCommentRequest struct {
	TargetType string  `json:"target_type" binding:"required"`
	TargetID   uint64  `json:"target_id" binding:"required"`
	ParentID   *uint64 `json:"parent_id"`
	Content    string  `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentResponse struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentListItem 嵌套评论树节点，Replies 只挂直接子回复
type CommentListItem struct {
	ID         uint64             `json:"id"`
	Content    string             `json:"content"`
	ParentID   *uint64            `json:"parent_id,omitempty"`
	LikeCount  int64              `json:"like_count"`
	ReplyCount int64              `json:"reply_count"`
	Liked      bool               `json:"liked"`
	Pinned     bool               `json:"pinned"`
	CreatedAt  time.Time          `json:"created_at"`
	Author     UserSummary        `json:"author"`
	Replies    []*CommentListItem `json:"replies"`
}

type CommentLikeResponse struct {
	LikeCount int64 `json:"like_count"`
	Liked     bool  `json:"liked"`
}
