package model

import "time"

// Video 视频模型
type Video struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	UserID   int64  `gorm:"not null;index:idx_videos_user_id;comment:视频作者ID" json:"user_id"`
	Username string `gorm:"size:50;not null;comment:作者用户名（冗余，创建时写入）" json:"username"`

	Title       string `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description string `gorm:"type:text;comment:视频描述" json:"description"`

	VideoURL     string `gorm:"size:500;not null;comment:视频播放地址" json:"video_url"`
	ThumbnailURL string `gorm:"size:500;not null;comment:封面地址" json:"thumbnail_url"`

	Visibility string  `gorm:"size:20;default:'public';comment:可见性 public/private" json:"visibility"`
	Category   *string `gorm:"size:50;index:idx_videos_category;comment:分类" json:"category"`

	Views    int64  `gorm:"not null;default:0;comment:播放量" json:"views"`
	Duration string `gorm:"size:10;comment:视频时长" json:"duration"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:上传时间" json:"created_at"`

	// 关联关系
	Likes    []Like    `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
	Comments []Comment `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Records  []View    `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"records,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
