package types

import "time"

type AnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type AnswerResponse struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type AnswerDetail struct {
	ID            uint64      `json:"id"`
	Content       string      `json:"content"`
	UpvoteCount   int64       `json:"upvote_count"`
	DownvoteCount int64       `json:"downvote_count"`
	CommentCount  int64       `json:"comment_count"`
	Best          bool        `json:"best"`
	Upvoted       bool        `json:"upvoted"`
	Downvoted     bool        `json:"downvoted"`
	CreatedAt     time.Time   `json:"created_at"`
	Author        UserSummary `json:"author"`
}

type AnswerVoteRequest struct {
	Type string `json:"type" binding:"required"`
}

// AnswerVoteResponse 返回回答行上的权威计数，而非客户端推算的增量
type AnswerVoteResponse struct {
	UpvoteCount   int64 `json:"upvote_count"`
	DownvoteCount int64 `json:"downvote_count"`
	Upvoted       bool  `json:"upvoted"`
	Downvoted     bool  `json:"downvoted"`
}
