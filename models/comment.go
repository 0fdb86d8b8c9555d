package models

import "time"

// Comment 评论表结构
// parent_id 为 NULL 表示顶级评论；同一 (target_type, target_id) 下
// 未删除评论中至多一条 is_pinned = 1
type Comment struct {
	ID         uint64     `gorm:"column:id;primaryKey" json:"id"`                                              // 评论唯一ID
	TargetType string     `gorm:"column:target_type;type:varchar(20);not null;index:idx_target" json:"target_type"` // 目标类型 article/answer
	TargetID   uint64     `gorm:"column:target_id;not null;index:idx_target" json:"target_id"`                 // 目标内容ID
	UserID     uint64     `gorm:"column:user_id;not null;index:idx_comment_user" json:"user_id"`               // 发布评论的用户ID
	ParentID   *uint64    `gorm:"column:parent_id;index" json:"parent_id,omitempty"`                           // 直接上级评论ID (NULL 表示顶级)
	Content    string     `gorm:"column:content;type:varchar(1000);not null" json:"content"`                   // 评论正文
	LikeCount  int64      `gorm:"column:like_count;not null;default:0" json:"like_count"`                      // 点赞数
	ReplyCount int64      `gorm:"column:reply_count;not null;default:0" json:"reply_count"`                    // 直接子回复数
	Pinned     int8       `gorm:"column:is_pinned;not null;default:0" json:"pinned"`                           // 是否置顶: 1-置顶
	DeletedAt  *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`                         // 软删除时间
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) IsPinned() bool {
	return c.Pinned == 1
}

func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}
