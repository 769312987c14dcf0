package repository

import (
	"vibetube-go/internal/model"

	"gorm.io/gorm"
)

type ViewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Exists 检查 (用户, 视频) 是否已有观看记录
func (r *ViewRepository) Exists(userID, videoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.View{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

// Register 在同一事务内写入观看记录并把视频播放量 +1
// 两个写操作要么都生效要么都不生效；并发重复请求由
// uq_views_user_video 唯一索引兜底，落败方收到 gorm.ErrDuplicatedKey
func (r *ViewRepository) Register(userID, videoID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		view := &model.View{UserID: userID, VideoID: videoID}
		if err := tx.Create(view).Error; err != nil {
			return err
		}

		result := tx.Model(&model.Video{}).Where("id = ?", videoID).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
