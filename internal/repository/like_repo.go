package repository

import (
	"vibetube-go/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create 创建点赞记录
func (r *LikeRepository) Create(userID, videoID int64, likeType string) (*model.Like, error) {
	like := &model.Like{UserID: userID, VideoID: videoID, Type: likeType}
	if err := r.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// Delete 删除 (用户, 视频) 的点赞记录，返回是否真的删除了
func (r *LikeRepository) Delete(userID, videoID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查 (用户, 视频) 是否已有点赞记录
func (r *LikeRepository) Exists(userID, videoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

// CountByVideo 统计视频的点赞数
func (r *LikeRepository) CountByVideo(videoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
