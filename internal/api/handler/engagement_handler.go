package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vibetube-go/internal/api/dto"
	"vibetube-go/internal/api/middleware"
	"vibetube-go/internal/api/response"
	"vibetube-go/internal/service"
	"vibetube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EngagementHandler struct {
	engagementService *service.EngagementService
}

func NewEngagementHandler(engagementService *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// ToggleLike 点赞切换
// @Summary 点赞切换
// @Description 已点赞则取消并返回 Removed，未点赞则新增并返回 Added
// @Tags 互动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "切换结果"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /like [post]
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	var req dto.LikeToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	result, err := h.engagementService.ToggleLike(userID, req.VideoID, req.Type)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, "Video not found")
			return
		}
		logger.Error("Toggle like failed", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("video_id", req.VideoID))
		response.InternalError(c, "点赞操作失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": string(result)})
}

// LikeStatus 查询点赞状态与总点赞数
// @Summary 查询点赞状态
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param video_id path int true "视频ID"
// @Success 200 {object} map[string]interface{} "点赞状态"
// @Router /likes/{video_id} [get]
func (h *EngagementHandler) LikeStatus(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	liked, count, err := h.engagementService.LikeStatus(userID, videoID)
	if err != nil {
		logger.Error("Get like status failed", zap.Error(err), zap.Int64("video_id", videoID))
		response.InternalError(c, "获取点赞状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": strconv.FormatBool(liked),
		"likes": count,
	})
}

// RegisterView 观看上报
// @Summary 观看上报
// @Description 每个用户对每个视频只计一次播放
// @Tags 互动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "上报结果"
// @Router /view [post]
func (h *EngagementHandler) RegisterView(c *gin.Context) {
	var req dto.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	result, err := h.engagementService.RegisterView(userID, req.VideoID)
	if err != nil {
		logger.Error("Register view failed", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("video_id", req.VideoID))
		response.InternalError(c, "观看上报失败")
		return
	}

	var msg string
	switch result {
	case service.ViewRegistered:
		msg = "view updated successfully!"
	case service.ViewAlreadyRegistered:
		msg = "view already registered!"
	case service.ViewVideoNotFound:
		msg = "video not found"
	}

	c.JSON(http.StatusOK, gin.H{"msg": msg})
}

// ToggleSubscription 订阅切换
// @Summary 订阅切换
// @Description 已订阅则取消并返回 Unsubscribed，未订阅则新增并返回 Subscribed
// @Tags 互动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "切换结果"
// @Failure 400 {object} response.ErrorResponse "不能订阅自己"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /subscribe [post]
func (h *EngagementHandler) ToggleSubscription(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	result, err := h.engagementService.ToggleSubscription(userID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfSubscription):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrChannelNotFound):
			response.NotFound(c, err.Error())
		default:
			logger.Error("Toggle subscription failed", zap.Error(err),
				zap.Int64("user_id", userID), zap.Int64("channel_id", req.UserID))
			response.InternalError(c, "订阅操作失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": string(result)})
}

// SubscriptionStatus 查询订阅状态与订阅者总数
// @Summary 查询订阅状态
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param channel_id path int true "频道用户ID"
// @Success 200 {object} map[string]interface{} "订阅状态"
// @Router /subscriptions/{channel_id} [get]
func (h *EngagementHandler) SubscriptionStatus(c *gin.Context) {
	channelID, err := strconv.ParseInt(c.Param("channel_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的频道ID")
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	subscribed, count, err := h.engagementService.SubscriptionStatus(userID, channelID)
	if err != nil {
		logger.Error("Get subscription status failed", zap.Error(err), zap.Int64("channel_id", channelID))
		response.InternalError(c, "获取订阅状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscribed":  strconv.FormatBool(subscribed),
		"subscribers": count,
	})
}
