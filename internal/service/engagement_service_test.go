package service

import (
	"sync"
	"testing"

	"vibetube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_ToggleLike(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	user := env.seedUser(t, "alice")
	video := env.seedVideo(t, user, "video")

	result, err := svc.ToggleLike(user.ID, video.ID, model.LikeTypeLike)
	require.NoError(t, err)
	assert.Equal(t, LikeAdded, result)

	// 再切换一次是取消
	result, err = svc.ToggleLike(user.ID, video.ID, model.LikeTypeLike)
	require.NoError(t, err)
	assert.Equal(t, LikeRemoved, result)

	liked, count, err := svc.LikeStatus(user.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)
}

func TestEngagementService_ToggleLike_SwitchTypeRemoves(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	user := env.seedUser(t, "alice")
	video := env.seedVideo(t, user, "video")

	_, err := svc.ToggleLike(user.ID, video.ID, model.LikeTypeLike)
	require.NoError(t, err)

	// 换一种类型也是取消已有记录，而不是改写类型
	result, err := svc.ToggleLike(user.ID, video.ID, model.LikeTypeDislike)
	require.NoError(t, err)
	assert.Equal(t, LikeRemoved, result)

	var count int64
	require.NoError(t, env.db.Model(&model.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestEngagementService_ToggleLike_VideoNotFound(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	user := env.seedUser(t, "alice")

	_, err := svc.ToggleLike(user.ID, 9999, model.LikeTypeLike)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestEngagementService_LikeStatus(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	video := env.seedVideo(t, alice, "video")

	_, err := svc.ToggleLike(alice.ID, video.ID, model.LikeTypeLike)
	require.NoError(t, err)
	_, err = svc.ToggleLike(bob.ID, video.ID, model.LikeTypeLike)
	require.NoError(t, err)

	liked, count, err := svc.LikeStatus(alice.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(2), count)
}

func TestEngagementService_RegisterView(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	user := env.seedUser(t, "alice")
	video := env.seedVideo(t, user, "video")

	result, err := svc.RegisterView(user.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, ViewRegistered, result)

	// 重复上报不是错误，也不再累加播放量
	result, err = svc.RegisterView(user.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, ViewAlreadyRegistered, result)

	var got model.Video
	require.NoError(t, env.db.First(&got, video.ID).Error)
	assert.Equal(t, int64(1), got.Views)
}

func TestEngagementService_RegisterView_VideoNotFound(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	user := env.seedUser(t, "alice")

	result, err := svc.RegisterView(user.ID, 9999)
	require.NoError(t, err)
	assert.Equal(t, ViewVideoNotFound, result)
}

func TestEngagementService_RegisterView_Concurrent(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	user := env.seedUser(t, "alice")
	video := env.seedVideo(t, user, "video")

	const goroutines = 10
	results := make([]ViewResult, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = svc.RegisterView(user.ID, video.ID)
		}(i)
	}
	wg.Wait()

	registered := 0
	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		if results[i] == ViewRegistered {
			registered++
		} else {
			assert.Equal(t, ViewAlreadyRegistered, results[i])
		}
	}

	// 唯一索引兜底，并发上报只有一个成功
	assert.Equal(t, 1, registered)

	var got model.Video
	require.NoError(t, env.db.First(&got, video.ID).Error)
	assert.Equal(t, int64(1), got.Views)
}

func TestEngagementService_ToggleSubscription(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	result, err := svc.ToggleSubscription(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, Subscribed, result)

	subscribed, count, err := svc.SubscriptionStatus(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)
	assert.Equal(t, int64(1), count)

	result, err = svc.ToggleSubscription(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, Unsubscribed, result)

	subscribed, count, err = svc.SubscriptionStatus(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)
	assert.Equal(t, int64(0), count)
}

func TestEngagementService_ToggleSubscription_Self(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	alice := env.seedUser(t, "alice")

	_, err := svc.ToggleSubscription(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfSubscription)
}

func TestEngagementService_ToggleSubscription_ChannelNotFound(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.engagementService()
	alice := env.seedUser(t, "alice")

	_, err := svc.ToggleSubscription(alice.ID, 9999)
	assert.ErrorIs(t, err, ErrChannelNotFound)
}
