package model

import "time"

// 点赞类型
const (
	LikeTypeLike    = "like"
	LikeTypeDislike = "dislike"
)

// Like 点赞/点踩模型，每个 (用户, 视频) 至多一行
type Like struct {
	ID      int64 `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID  int64 `gorm:"not null;uniqueIndex:uq_likes_user_video;index:idx_likes_user_id;comment:点赞用户ID" json:"user_id"`
	VideoID int64 `gorm:"not null;uniqueIndex:uq_likes_user_video;index:idx_likes_video_id;comment:被点赞视频ID" json:"video_id"`

	Type string `gorm:"size:10;not null;comment:类型 like/dislike" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
