package types

import "time"

type NotificationItem struct {
	ID         uint64    `json:"id"`
	SenderID   uint64    `json:"sender_id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	TargetType string    `json:"target_type,omitempty"`
	TargetID   uint64    `json:"target_id,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotificationList struct {
	Items       []*NotificationItem `json:"items"`
	Pagination  Pagination          `json:"pagination"`
	UnreadCount int64               `json:"unread_count"`
}

type NotificationMarkAllResponse struct {
	Updated int64 `json:"updated"`
}

type NotificationUnreadCountResponse struct {
	Count int64 `json:"count"`
}
