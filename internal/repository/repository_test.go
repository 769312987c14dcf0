package repository

import (
	"testing"

	"vibetube-go/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 创建内存 SQLite 数据库并迁移所有表
// 连接池上限设为 1，内存库在多连接下会各自为政
func setupTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		PasswordHash: "hash-placeholder",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, user *model.User, title string, mutate ...func(*model.Video)) *model.Video {
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
	require.NoError(t, db.Create(video).Error)
	return video
}
