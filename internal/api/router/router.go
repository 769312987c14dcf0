package router

import (
	"vibetube-go/internal/api/handler"
	"vibetube-go/internal/api/middleware"
	"vibetube-go/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
// 路由保持扁平结构，与既有前端的调用路径一一对应
func Setup(
	r *gin.Engine,
	tokenMaker *utils.TokenMaker,
	authHandler *handler.AuthHandler,
	videoHandler *handler.VideoHandler,
	engagementHandler *handler.EngagementHandler,
	commentHandler *handler.CommentHandler,
) {
	// --- 公开接口（不需要登录） ---
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	r.GET("/getvideos/:selector", videoHandler.GetVideos)
	r.GET("/getvideo/:id", videoHandler.GetVideo)
	r.GET("/search", videoHandler.Search)
	r.GET("/comments/:video_id", commentHandler.List)

	// --- 需要登录的接口 ---
	auth := r.Group("", middleware.AuthRequired(tokenMaker))
	{
		auth.GET("/verify-token", authHandler.VerifyToken)

		auth.POST("/upload-video", videoHandler.Upload)

		auth.POST("/like", engagementHandler.ToggleLike)
		auth.GET("/likes/:video_id", engagementHandler.LikeStatus)
		auth.POST("/view", engagementHandler.RegisterView)

		auth.POST("/subscribe", engagementHandler.ToggleSubscription)
		auth.GET("/subscriptions/:channel_id", engagementHandler.SubscriptionStatus)

		auth.POST("/comment", commentHandler.Create)
	}
}
