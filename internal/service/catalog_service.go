package service

import (
	"errors"

	"vibetube-go/internal/model"
	"vibetube-go/internal/repository"

	"gorm.io/gorm"
)

var ErrInvalidCategory = errors.New("Invalid category")

// SelectorRandom 列表查询的随机模式选择器
const SelectorRandom = "random"

// validCategories 固定的视频分类集合
var validCategories = map[string]bool{
	"music":         true,
	"movies":        true,
	"gaming":        true,
	"anime":         true,
	"education":     true,
	"entertainment": true,
	"tech":          true,
	"news":          true,
	"vlogs":         true,
}

// IsValidCategory 检查分类是否在固定集合内
func IsValidCategory(category string) bool {
	return validCategories[category]
}

// CatalogService 视频/评论的读侧查询
type CatalogService struct {
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
}

func NewCatalogService(videoRepo *repository.VideoRepository, commentRepo *repository.CommentRepository) *CatalogService {
	return &CatalogService{videoRepo: videoRepo, commentRepo: commentRepo}
}

// ListVideos 按选择器查询视频列表
// selector 为 "random" 时随机抽样（顺序不保证稳定），
// 为固定分类之一时按分类过滤、上传时间倒序；其他值返回 ErrInvalidCategory
func (s *CatalogService) ListVideos(selector string, limit, offset int) ([]model.Video, error) {
	if selector == SelectorRandom {
		return s.videoRepo.ListRandom(offset, limit)
	}
	if !IsValidCategory(selector) {
		return nil, ErrInvalidCategory
	}
	return s.videoRepo.ListByCategory(selector, offset, limit)
}

// Search 模糊搜索视频
// 排序：标题命中 > 作者用户名命中 > 仅描述命中，同级按播放量倒序
func (s *CatalogService) Search(query string, offset, limit int) ([]model.Video, error) {
	return s.videoRepo.Search(query, offset, limit)
}

// GetVideo 根据 ID 获取单个视频
func (s *CatalogService) GetVideo(videoID int64) (*model.Video, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// ListComments 获取视频的评论列表，最新的在前
func (s *CatalogService) ListComments(videoID int64) ([]model.Comment, error) {
	return s.commentRepo.ListByVideo(videoID)
}
