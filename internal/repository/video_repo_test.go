package repository

import (
	"testing"
	"time"

	"vibetube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

func TestVideoRepository_ListByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	createTestVideo(t, db, user, "old music", func(v *model.Video) {
		v.Category = strptr("music")
		v.CreatedAt = base
	})
	createTestVideo(t, db, user, "new music", func(v *model.Video) {
		v.Category = strptr("music")
		v.CreatedAt = base.Add(time.Minute)
	})
	createTestVideo(t, db, user, "gaming", func(v *model.Video) {
		v.Category = strptr("gaming")
		v.CreatedAt = base.Add(2 * time.Minute)
	})

	videos, err := repo.ListByCategory("music", 0, 12)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	// 最新的在前
	assert.Equal(t, "new music", videos[0].Title)
	assert.Equal(t, "old music", videos[1].Title)
}

func TestVideoRepository_ListByCategory_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		idx := i
		createTestVideo(t, db, user, "video", func(v *model.Video) {
			v.Category = strptr("tech")
			v.CreatedAt = base.Add(time.Duration(idx) * time.Minute)
		})
	}

	page1, err := repo.ListByCategory("tech", 0, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := repo.ListByCategory("tech", 4, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestVideoRepository_ListRandom(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "alice")

	for i := 0; i < 5; i++ {
		createTestVideo(t, db, user, "video")
	}

	videos, err := repo.ListRandom(0, 3)
	require.NoError(t, err)
	assert.Len(t, videos, 3)
}

func TestVideoRepository_List_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)

	videos, err := repo.ListByCategory("music", 0, 12)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestVideoRepository_Search_TierRanking(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)

	alice := createTestUser(t, db, "alice")
	catlover := createTestUser(t, db, "catfan")

	// 仅描述命中
	createTestVideo(t, db, alice, "morning routine", func(v *model.Video) {
		v.Description = "my cat wakes me up"
		v.Views = 1000
	})
	// 用户名命中
	createTestVideo(t, db, catlover, "unboxing", func(v *model.Video) {
		v.Views = 500
	})
	// 标题命中
	createTestVideo(t, db, alice, "funny cat compilation", func(v *model.Video) {
		v.Views = 10
	})

	videos, err := repo.Search("cat", 0, 12)
	require.NoError(t, err)
	require.Len(t, videos, 3)

	// 标题命中 > 用户名命中 > 仅描述命中，播放量不改变层级
	assert.Equal(t, "funny cat compilation", videos[0].Title)
	assert.Equal(t, "unboxing", videos[1].Title)
	assert.Equal(t, "morning routine", videos[2].Title)
}

func TestVideoRepository_Search_ViewsWithinTier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "alice")

	createTestVideo(t, db, user, "cat video low", func(v *model.Video) { v.Views = 5 })
	createTestVideo(t, db, user, "cat video high", func(v *model.Video) { v.Views = 500 })

	videos, err := repo.Search("cat", 0, 12)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "cat video high", videos[0].Title)
	assert.Equal(t, "cat video low", videos[1].Title)
}

func TestVideoRepository_Search_CaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "alice")

	createTestVideo(t, db, user, "My CAT Video")

	videos, err := repo.Search("cat", 0, 12)
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	videos, err = repo.Search("CAT", 0, 12)
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}

func TestVideoRepository_Search_NoMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "alice")

	createTestVideo(t, db, user, "cooking show")

	videos, err := repo.Search("spaceship", 0, 12)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestVideoRepository_UpdateURLs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	user := createTestUser(t, db, "alice")
	video := createTestVideo(t, db, user, "draft")

	err := repo.UpdateURLs(video.ID, "http://cdn/v.mp4", "http://cdn/t.jpg")
	require.NoError(t, err)

	got, err := repo.GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/v.mp4", got.VideoURL)
	assert.Equal(t, "http://cdn/t.jpg", got.ThumbnailURL)
}

func TestVideoRepository_UpdateURLs_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)

	err := repo.UpdateURLs(9999, "http://cdn/v.mp4", "http://cdn/t.jpg")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)

	_, err := repo.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
