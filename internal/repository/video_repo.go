package repository

import (
	"strings"

	"vibetube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// Delete 删除视频记录（对象存储上传失败时回滚用）
func (r *VideoRepository) Delete(id int64) error {
	return r.db.Delete(&model.Video{}, id).Error
}

// UpdateURLs 回填上传完成后的播放地址和封面地址
func (r *VideoRepository) UpdateURLs(id int64, videoURL, thumbnailURL string) error {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(map[string]interface{}{
		"video_url":     videoURL,
		"thumbnail_url": thumbnailURL,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByCategory 按分类查询视频，按上传时间倒序分页
func (r *VideoRepository) ListByCategory(category string, offset, limit int) ([]model.Video, error) {
	videos := make([]model.Video, 0, limit)
	err := r.db.Where("category = ?", category).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&videos).Error
	return videos, err
}

// ListRandom 随机抽取视频，顺序不保证稳定
func (r *VideoRepository) ListRandom(offset, limit int) ([]model.Video, error) {
	videos := make([]model.Video, 0, limit)
	err := r.db.Order("RANDOM()").
		Offset(offset).Limit(limit).
		Find(&videos).Error
	return videos, err
}

// Search 模糊搜索标题、描述、作者用户名（不区分大小写）
// 排序：标题命中 > 用户名命中 > 仅描述命中，同级按播放量倒序
// 用 LOWER + LIKE 而非 ILIKE，保证 PostgreSQL 与 SQLite 行为一致
func (r *VideoRepository) Search(query string, offset, limit int) ([]model.Video, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	videos := make([]model.Video, 0, limit)
	err := r.db.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(username) LIKE ?",
			pattern, pattern, pattern).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN LOWER(title) LIKE ? THEN 1 WHEN LOWER(username) LIKE ? THEN 2 ELSE 3 END, views DESC",
			Vars:               []interface{}{pattern, pattern},
			WithoutParentheses: true,
		}}).
		Offset(offset).Limit(limit).
		Find(&videos).Error
	return videos, err
}
