package service

import (
	"errors"

	"vibetube-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrVideoNotFound    = errors.New("Video not found")
	ErrSelfSubscription = errors.New("不能订阅自己的频道")
	ErrChannelNotFound  = errors.New("频道不存在")
)

// ToggleResult 切换操作的结果
type ToggleResult string

const (
	LikeAdded    ToggleResult = "Added"
	LikeRemoved  ToggleResult = "Removed"
	Subscribed   ToggleResult = "Subscribed"
	Unsubscribed ToggleResult = "Unsubscribed"
)

// ViewResult 观看上报的结果
type ViewResult string

const (
	ViewRegistered        ViewResult = "registered"
	ViewAlreadyRegistered ViewResult = "already_registered"
	ViewVideoNotFound     ViewResult = "video_not_found"
)

// EngagementService 幂等的互动状态切换：点赞、观看上报、订阅
type EngagementService struct {
	likeRepo  *repository.LikeRepository
	viewRepo  *repository.ViewRepository
	subRepo   *repository.SubscriptionRepository
	videoRepo *repository.VideoRepository
	userRepo  *repository.UserRepository
}

func NewEngagementService(
	likeRepo *repository.LikeRepository,
	viewRepo *repository.ViewRepository,
	subRepo *repository.SubscriptionRepository,
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
) *EngagementService {
	return &EngagementService{
		likeRepo:  likeRepo,
		viewRepo:  viewRepo,
		subRepo:   subRepo,
		videoRepo: videoRepo,
		userRepo:  userRepo,
	}
}

// ToggleLike 点赞切换
// 已有记录则删除并返回 Removed——即使传入的 type 与已存记录不同也是删除，
// 与既有前端约定保持一致；没有记录则按传入 type 新增并返回 Added
func (s *EngagementService) ToggleLike(userID, videoID int64, likeType string) (ToggleResult, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrVideoNotFound
		}
		return "", err
	}

	removed, err := s.likeRepo.Delete(userID, videoID)
	if err != nil {
		return "", err
	}
	if removed {
		return LikeRemoved, nil
	}

	if _, err := s.likeRepo.Create(userID, videoID, likeType); err != nil {
		// 并发下另一请求刚插入同一条记录，结果等同于本次新增成功
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return LikeAdded, nil
		}
		return "", err
	}
	return LikeAdded, nil
}

// LikeStatus 查询当前用户是否点赞过该视频及视频的总点赞数
func (s *EngagementService) LikeStatus(userID, videoID int64) (bool, int64, error) {
	liked, err := s.likeRepo.Exists(userID, videoID)
	if err != nil {
		return false, 0, err
	}

	count, err := s.likeRepo.CountByVideo(videoID)
	if err != nil {
		return false, 0, err
	}

	return liked, count, nil
}

// RegisterView 观看上报
// 每个 (用户, 视频) 只计一次：首次上报在同一事务内写入观看记录并把
// 播放量 +1；重复上报（包括并发时唯一索引落败的一方）不做任何修改
func (s *EngagementService) RegisterView(userID, videoID int64) (ViewResult, error) {
	exists, err := s.viewRepo.Exists(userID, videoID)
	if err != nil {
		return "", err
	}
	if exists {
		return ViewAlreadyRegistered, nil
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ViewVideoNotFound, nil
		}
		return "", err
	}

	if err := s.viewRepo.Register(userID, videoID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return ViewAlreadyRegistered, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ViewVideoNotFound, nil
		}
		return "", err
	}

	return ViewRegistered, nil
}

// ToggleSubscription 订阅切换，订阅自己的频道直接拒绝
func (s *EngagementService) ToggleSubscription(userID, channelID int64) (ToggleResult, error) {
	if userID == channelID {
		return "", ErrSelfSubscription
	}

	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrChannelNotFound
		}
		return "", err
	}

	removed, err := s.subRepo.Delete(userID, channelID)
	if err != nil {
		return "", err
	}
	if removed {
		return Unsubscribed, nil
	}

	if _, err := s.subRepo.Create(userID, channelID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Subscribed, nil
		}
		return "", err
	}
	return Subscribed, nil
}

// SubscriptionStatus 查询当前用户是否订阅了该频道及频道的订阅者总数
func (s *EngagementService) SubscriptionStatus(userID, channelID int64) (bool, int64, error) {
	subscribed, err := s.subRepo.Exists(userID, channelID)
	if err != nil {
		return false, 0, err
	}

	count, err := s.subRepo.CountByChannel(channelID)
	if err != nil {
		return false, 0, err
	}

	return subscribed, count, nil
}
