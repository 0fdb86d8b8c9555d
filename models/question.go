package models

import "time"

type Question struct {
	ID           uint64     `gorm:"column:id;primaryKey" json:"id"`
	UserID       uint64     `gorm:"column:user_id;not null;index:idx_q_user_created" json:"user_id"`
	Title        string     `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Description  string     `gorm:"column:description;type:text;not null" json:"description"`
	BestAnswerID *uint64    `gorm:"column:best_answer_id" json:"best_answer_id,omitempty"`
	ViewCount    int64      `gorm:"column:view_count;not null;default:0" json:"view_count"`
	AnswerCount  int64      `gorm:"column:answer_count;not null;default:0" json:"answer_count"`
	FollowCount  int64      `gorm:"column:follow_count;not null;default:0" json:"follow_count"`
	DeletedAt    *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime;index:idx_q_user_created" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionFollow 问题关注关系，存在即关注
type QuestionFollow struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	QuestionID uint64    `gorm:"column:question_id;index:idx_question_user,unique" json:"question_id"`
	UserID     uint64    `gorm:"column:user_id;index:idx_question_user,unique" json:"user_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuestionFollow) TableName() string {
	return "question_follows"
}
