package model

import "time"

// Comment 评论模型
type Comment struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	UserID   int64  `gorm:"not null;index:idx_comments_user_id;comment:评论用户ID" json:"user_id"`
	Username string `gorm:"size:50;not null;comment:评论者用户名（冗余，创建时写入）" json:"username"`
	VideoID  int64  `gorm:"not null;index:idx_comments_video_id;comment:被评论视频ID" json:"video_id"`

	Text string `gorm:"type:text;not null;comment:评论内容" json:"text"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_created_at;comment:评论时间" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
