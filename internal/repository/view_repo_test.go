package repository

import (
	"testing"

	"vibetube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestViewRepository_Register(t *testing.T) {
	db := setupTestDB(t)
	repo := NewViewRepository(db)
	user := createTestUser(t, db, "alice")
	video := createTestVideo(t, db, user, "video")

	require.NoError(t, repo.Register(user.ID, video.ID))

	var got model.Video
	require.NoError(t, db.First(&got, video.ID).Error)
	assert.Equal(t, int64(1), got.Views)

	exists, err := repo.Exists(user.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestViewRepository_Register_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewViewRepository(db)
	user := createTestUser(t, db, "alice")
	video := createTestVideo(t, db, user, "video")

	require.NoError(t, repo.Register(user.ID, video.ID))

	// 唯一索引兜底，重复写入失败且事务回滚，播放量不变
	err := repo.Register(user.ID, video.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var got model.Video
	require.NoError(t, db.First(&got, video.ID).Error)
	assert.Equal(t, int64(1), got.Views)
}

func TestViewRepository_Register_VideoGone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewViewRepository(db)
	user := createTestUser(t, db, "alice")

	// 视频行不存在时整个事务回滚，不留下观看记录
	err := repo.Register(user.ID, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := repo.Exists(user.ID, 9999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestViewRepository_Register_DistinctUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewViewRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	video := createTestVideo(t, db, alice, "video")

	require.NoError(t, repo.Register(alice.ID, video.ID))
	require.NoError(t, repo.Register(bob.ID, video.ID))

	var got model.Video
	require.NoError(t, db.First(&got, video.ID).Error)
	assert.Equal(t, int64(2), got.Views)
}
