package models

import "time"

type Answer struct {
	ID            uint64     `gorm:"column:id;primaryKey" json:"id"`
	QuestionID    uint64     `gorm:"column:question_id;not null;index" json:"question_id"`
	UserID        uint64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Content       string     `gorm:"column:content;type:text;not null" json:"content"`
	UpvoteCount   int64      `gorm:"column:upvote_count;not null;default:0" json:"upvote_count"`
	DownvoteCount int64      `gorm:"column:downvote_count;not null;default:0" json:"downvote_count"`
	LikeCount     int64      `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount  int64      `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	FavoriteCount int64      `gorm:"column:favorite_count;not null;default:0" json:"favorite_count"`
	IsBest        int8       `gorm:"column:is_best;not null;default:0" json:"is_best"`
	DeletedAt     *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Answer) TableName() string {
	return "answers"
}

// AnswerVote 每个 (answer, user) 至多一行，vote_type 取 upvote/downvote
type AnswerVote struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	AnswerID  uint64    `gorm:"column:answer_id;index:idx_answer_user,unique" json:"answer_id"`
	UserID    uint64    `gorm:"column:user_id;index:idx_answer_user,unique" json:"user_id"`
	VoteType  string    `gorm:"column:vote_type;type:varchar(10);not null" json:"vote_type"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AnswerVote) TableName() string {
	return "answer_votes"
}
