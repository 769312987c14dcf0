package service

import (
	"testing"

	"vibetube-go/internal/model"
	"vibetube-go/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv 服务层测试环境，所有 Repository 共享同一个内存库
type testEnv struct {
	db          *gorm.DB
	userRepo    *repository.UserRepository
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
	commentRepo *repository.CommentRepository
	viewRepo    *repository.ViewRepository
	subRepo     *repository.SubscriptionRepository
}

// 连接池上限设为 1，内存库在多连接下会各自为政
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.Comment{},
		&model.View{},
		&model.Subscription{},
	))

	return &testEnv{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		videoRepo:   repository.NewVideoRepository(db),
		likeRepo:    repository.NewLikeRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		viewRepo:    repository.NewViewRepository(db),
		subRepo:     repository.NewSubscriptionRepository(db),
	}
}

func (e *testEnv) engagementService() *EngagementService {
	return NewEngagementService(e.likeRepo, e.viewRepo, e.subRepo, e.videoRepo, e.userRepo)
}

func (e *testEnv) seedUser(t *testing.T, username string) *model.User {
	t.Helper()

	user := &model.User{Username: username, PasswordHash: "hash-placeholder"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) seedVideo(t *testing.T, user *model.User, title string, mutate ...func(*model.Video)) *model.Video {
	t.Helper()

	video := &model.Video{
		UserID:       user.ID,
		Username:     user.Username,
		Title:        title,
		VideoURL:     "http://example.com/v.mp4",
		ThumbnailURL: "http://example.com/t.jpg",
		Visibility:   "public",
	}
	for _, m := range mutate {
		m(video)
	}
	require.NoError(t, e.db.Create(video).Error)
	return video
}
