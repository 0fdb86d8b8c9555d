package types

import "time"

type FollowUserItem struct {
	ID             uint64    `json:"id"`
	Username       string    `json:"username"`
	Nickname       string    `json:"nickname"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	Following      bool      `json:"following"`
	FollowedAt     time.Time `json:"followed_at"`
}
