package dto

// LikeToggleRequest 点赞/点踩切换请求
type LikeToggleRequest struct {
	VideoID int64  `json:"video_id" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=like dislike"`
}

// ViewRequest 观看上报请求
type ViewRequest struct {
	VideoID int64 `json:"video_id" binding:"required"`
}

// SubscribeRequest 订阅切换请求，user_id 为目标频道的用户 ID
type SubscribeRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}
