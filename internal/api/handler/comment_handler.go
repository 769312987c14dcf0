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

type CommentHandler struct {
	commentService *service.CommentService
	catalogService *service.CatalogService
}

func NewCommentHandler(commentService *service.CommentService, catalogService *service.CatalogService) *CommentHandler {
	return &CommentHandler{commentService: commentService, catalogService: catalogService}
}

// Create 发表评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Comment "创建的评论"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /comment [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	comment, err := h.commentService.Create(userID, req.VideoID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, "Video not found")
			return
		}
		logger.Error("Create comment failed", zap.Error(err),
			zap.Int64("user_id", userID), zap.Int64("video_id", req.VideoID))
		response.InternalError(c, "发表评论失败")
		return
	}

	c.JSON(http.StatusOK, comment)
}

// List 获取视频的评论列表
// @Summary 获取评论列表
// @Description 按评论时间倒序返回
// @Tags 评论
// @Produce json
// @Param video_id path int true "视频ID"
// @Success 200 {array} model.Comment "评论列表"
// @Router /comments/{video_id} [get]
func (h *CommentHandler) List(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("video_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	comments, err := h.catalogService.ListComments(videoID)
	if err != nil {
		logger.Error("List comments failed", zap.Error(err), zap.Int64("video_id", videoID))
		response.InternalError(c, "获取评论列表失败")
		return
	}

	c.JSON(http.StatusOK, comments)
}
