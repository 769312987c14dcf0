package dto

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	VideoID int64  `json:"video_id" binding:"required"`
	Text    string `json:"text" binding:"required,min=1"`
}
