package service

import (
	"errors"

	"vibetube-go/internal/model"
	"vibetube-go/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, videoRepo *repository.VideoRepository, userRepo *repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo, userRepo: userRepo}
}

// Create 发表评论
// 评论者用户名在此处冗余写入评论行，之后不随用户改名更新
func (s *CommentService) Create(userID, videoID int64, text string) (*model.Comment, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:   userID,
		Username: user.Username,
		VideoID:  videoID,
		Text:     text,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}
