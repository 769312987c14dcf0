package repository

import (
	"vibetube-go/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// ListByVideo 获取视频的评论列表，最新的在前
func (r *CommentRepository) ListByVideo(videoID int64) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	err := r.db.Where("video_id = ?", videoID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
