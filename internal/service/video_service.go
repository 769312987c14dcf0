package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"vibetube-go/internal/api/dto"
	"vibetube-go/internal/config"
	infraMinio "vibetube-go/internal/infra/minio"
	"vibetube-go/internal/model"
	"vibetube-go/internal/repository"
	"vibetube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UploadFile 待上传的单个文件
type UploadFile struct {
	Reader      io.Reader
	Size        int64
	Ext         string // 含点的扩展名，如 ".mp4"
	ContentType string
}

type VideoService struct {
	videoRepo *repository.VideoRepository
	userRepo  *repository.UserRepository
	minioCfg  *config.MinIOConfig
}

func NewVideoService(videoRepo *repository.VideoRepository, userRepo *repository.UserRepository, minioCfg *config.MinIOConfig) *VideoService {
	return &VideoService{videoRepo: videoRepo, userRepo: userRepo, minioCfg: minioCfg}
}

// Upload 上传视频：先落库拿到 ID，再上传视频和封面到 MinIO，最后回填地址
// 对象存储失败时删除已落库的记录
// 作者用户名在此处冗余写入视频行，之后不随用户改名更新
func (s *VideoService) Upload(userID int64, req *dto.VideoUploadRequest, videoFile, thumbFile *UploadFile) (*model.Video, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = "public"
	}

	video := &model.Video{
		UserID:      userID,
		Username:    user.Username,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Visibility:  visibility,
		Duration:    req.Duration,
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	videoObject := fmt.Sprintf("%d/%d%s", userID, video.ID, videoFile.Ext)
	thumbObject := fmt.Sprintf("%d/%d%s", userID, video.ID, thumbFile.Ext)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := infraMinio.UploadFile(ctx, infraMinio.VideoBucket, videoObject, videoFile.Reader, videoFile.Size, videoFile.ContentType); err != nil {
		logger.Error("Upload video to MinIO failed, rolling back video record",
			zap.Int64("video_id", video.ID), zap.Error(err))
		_ = s.videoRepo.Delete(video.ID)
		return nil, fmt.Errorf("上传视频文件失败: %w", err)
	}

	if _, err := infraMinio.UploadFile(ctx, infraMinio.ThumbBucket, thumbObject, thumbFile.Reader, thumbFile.Size, thumbFile.ContentType); err != nil {
		logger.Error("Upload thumbnail to MinIO failed, rolling back video record",
			zap.Int64("video_id", video.ID), zap.Error(err))
		_ = infraMinio.RemoveFile(ctx, infraMinio.VideoBucket, videoObject)
		_ = s.videoRepo.Delete(video.ID)
		return nil, fmt.Errorf("上传封面文件失败: %w", err)
	}

	video.VideoURL = infraMinio.GetPublicURL(s.minioCfg.Endpoint, s.minioCfg.UseSSL, infraMinio.VideoBucket, videoObject)
	video.ThumbnailURL = infraMinio.GetPublicURL(s.minioCfg.Endpoint, s.minioCfg.UseSSL, infraMinio.ThumbBucket, thumbObject)

	if err := s.videoRepo.UpdateURLs(video.ID, video.VideoURL, video.ThumbnailURL); err != nil {
		return nil, err
	}

	return video, nil
}
