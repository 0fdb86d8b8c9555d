package types

import "time"

type QuestionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type QuestionResponse struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ViewCount   int64       `json:"view_count"`
	AnswerCount int64       `json:"answer_count"`
	FollowCount int64       `json:"follow_count"`
	Following   bool        `json:"following"`
	Author      UserSummary `json:"author"`
	CreatedAt   time.Time   `json:"created_at"`
}
