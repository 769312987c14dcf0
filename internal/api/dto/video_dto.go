package dto

import "time"

// VideoUploadRequest 视频上传请求（multipart/form-data，文件字段单独取）
type VideoUploadRequest struct {
	Title       string  `form:"title" binding:"required,min=1,max=200"`
	Description string  `form:"description" binding:"omitempty"`
	Category    *string `form:"category" binding:"omitempty,max=50"`
	Visibility  string  `form:"visibility" binding:"omitempty,oneof=public private"`
	Duration    string  `form:"duration" binding:"omitempty,max=10"`
}

// SearchResult 搜索接口返回的视频摘要
type SearchResult struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	VideoURL     string    `json:"video_url"`
	Username     string    `json:"username"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}
