package types

type LikeRequest struct {
	TargetType string `json:"target_type" binding:"required"`
	TargetID   uint64 `json:"target_id" binding:"required"`
}

type LikeStatusResponse struct {
	LikeCount int64 `json:"like_count"`
	Liked     bool  `json:"liked"`
}
