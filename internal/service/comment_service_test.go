package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Create(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewCommentService(env.commentRepo, env.videoRepo, env.userRepo)
	user := env.seedUser(t, "alice")
	video := env.seedVideo(t, user, "video")

	comment, err := svc.Create(user.ID, video.ID, "nice video")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, "nice video", comment.Text)

	// 评论行冗余记录评论者用户名
	assert.Equal(t, "alice", comment.Username)
}

func TestCommentService_Create_VideoNotFound(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewCommentService(env.commentRepo, env.videoRepo, env.userRepo)
	user := env.seedUser(t, "alice")

	_, err := svc.Create(user.ID, 9999, "nice video")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestCommentService_Create_UserGone(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewCommentService(env.commentRepo, env.videoRepo, env.userRepo)
	user := env.seedUser(t, "alice")
	video := env.seedVideo(t, user, "video")

	_, err := svc.Create(9999, video.ID, "nice video")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
