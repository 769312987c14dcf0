package model

import "time"

// View 观看记录模型，唯一索引保证每个 (用户, 视频) 只记一次
type View struct {
	ID      int64 `gorm:"primaryKey;autoIncrement;comment:观看记录ID" json:"id"`
	UserID  int64 `gorm:"not null;uniqueIndex:uq_views_user_video;comment:观看用户ID" json:"user_id"`
	VideoID int64 `gorm:"not null;uniqueIndex:uq_views_user_video;index:idx_views_video_id;comment:被观看视频ID" json:"video_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;comment:首次观看时间" json:"created_at"`
}

func (View) TableName() string {
	return "views"
}
