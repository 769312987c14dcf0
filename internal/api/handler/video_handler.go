package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"vibetube-go/internal/api/dto"
	"vibetube-go/internal/api/middleware"
	"vibetube-go/internal/api/response"
	"vibetube-go/internal/model"
	"vibetube-go/internal/service"
	"vibetube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultListLimit  = 12
	maxListLimit      = 50
	maxSearchLimit    = 100
	maxVideoSizeBytes = int64(500 * 1024 * 1024)
)

// 允许上传的文件扩展名
var (
	allowedVideoExts = map[string]bool{
		".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".webm": true,
	}
	allowedThumbExts = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
	}
)

type VideoHandler struct {
	videoService   *service.VideoService
	catalogService *service.CatalogService
}

func NewVideoHandler(videoService *service.VideoService, catalogService *service.CatalogService) *VideoHandler {
	return &VideoHandler{videoService: videoService, catalogService: catalogService}
}

// Upload 上传视频及封面
// @Summary 上传视频
// @Description 上传视频文件和封面，落库后返回视频记录
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Video "上传成功"
// @Failure 400 {object} response.ErrorResponse "文件格式或参数无效"
// @Router /upload-video [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	var req dto.VideoUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		response.BadRequest(c, "请上传视频文件")
		return
	}
	thumbFile, err := c.FormFile("thumbnail")
	if err != nil {
		response.BadRequest(c, "请上传封面文件")
		return
	}

	videoExt := strings.ToLower(filepath.Ext(videoFile.Filename))
	if !allowedVideoExts[videoExt] {
		response.BadRequest(c, "Invalid video format")
		return
	}
	thumbExt := strings.ToLower(filepath.Ext(thumbFile.Filename))
	if !allowedThumbExts[thumbExt] {
		response.BadRequest(c, "Invalid thumbnail format")
		return
	}

	if videoFile.Size == 0 || videoFile.Size > maxVideoSizeBytes {
		response.BadRequest(c, "文件大小无效（不能为空，最大 500MB）")
		return
	}

	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	vf, err := videoFile.Open()
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer vf.Close()

	tf, err := thumbFile.Open()
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer tf.Close()

	video, err := h.videoService.Upload(currentUserID, &req,
		&service.UploadFile{
			Reader:      vf,
			Size:        videoFile.Size,
			Ext:         videoExt,
			ContentType: videoFile.Header.Get("Content-Type"),
		},
		&service.UploadFile{
			Reader:      tf,
			Size:        thumbFile.Size,
			Ext:         thumbExt,
			ContentType: thumbFile.Header.Get("Content-Type"),
		},
	)
	if err != nil {
		logger.Error("Upload video failed", zap.Error(err))
		response.InternalError(c, "上传视频失败")
		return
	}

	c.JSON(http.StatusOK, video)
}

// GetVideos 按选择器分页查询视频列表
// @Summary 查询视频列表
// @Description selector 为 "random" 或固定分类之一
// @Tags 视频
// @Produce json
// @Param selector path string true "random 或分类名"
// @Param limit query int false "每页数量 1-50，默认 12"
// @Param offset query int false "偏移量，默认 0"
// @Success 200 {array} model.Video "视频列表"
// @Failure 400 {object} response.ErrorResponse "无效分类或分页参数"
// @Router /getvideos/{selector} [get]
func (h *VideoHandler) GetVideos(c *gin.Context) {
	limit, offset, ok := parseLimitOffset(c, maxListLimit)
	if !ok {
		return
	}

	videos, err := h.catalogService.ListVideos(c.Param("selector"), limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			response.BadRequest(c, "Invalid category")
			return
		}
		logger.Error("List videos failed", zap.Error(err), zap.String("selector", c.Param("selector")))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	c.JSON(http.StatusOK, videos)
}

// GetVideo 获取单个视频
// @Summary 获取视频详情
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} model.Video "视频详情"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /getvideo/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	video, err := h.catalogService.GetVideo(videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, "Video not found")
			return
		}
		logger.Error("Get video failed", zap.Error(err), zap.Int64("video_id", videoID))
		response.InternalError(c, "获取视频失败")
		return
	}

	c.JSON(http.StatusOK, video)
}

// Search 搜索视频
// @Summary 搜索视频
// @Description 按标题、描述、作者用户名模糊搜索，标题命中优先
// @Tags 视频
// @Produce json
// @Param query query string true "搜索关键词"
// @Param limit query int false "每页数量 1-100，默认 12"
// @Param offset query int false "偏移量，默认 0"
// @Success 200 {array} dto.SearchResult "搜索结果"
// @Failure 400 {object} response.ErrorResponse "参数无效"
// @Router /search [get]
func (h *VideoHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "搜索关键词不能为空")
		return
	}

	limit, offset, ok := parseLimitOffset(c, maxSearchLimit)
	if !ok {
		return
	}

	videos, err := h.catalogService.Search(query, offset, limit)
	if err != nil {
		logger.Error("Search videos failed", zap.Error(err), zap.String("query", query))
		response.InternalError(c, "搜索失败")
		return
	}

	results := make([]dto.SearchResult, 0, len(videos))
	for _, v := range videos {
		results = append(results, toSearchResult(&v))
	}

	c.JSON(http.StatusOK, results)
}

func toSearchResult(v *model.Video) dto.SearchResult {
	return dto.SearchResult{
		ID:           v.ID,
		Title:        v.Title,
		ThumbnailURL: v.ThumbnailURL,
		VideoURL:     v.VideoURL,
		Username:     v.Username,
		Views:        v.Views,
		CreatedAt:    v.CreatedAt,
	}
}

// parseLimitOffset 解析分页参数，越界时直接写 400 响应并返回 ok=false
func parseLimitOffset(c *gin.Context, maxLimit int) (limit, offset int, ok bool) {
	limit = defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxLimit {
			response.BadRequest(c, "无效的 limit 参数")
			return 0, 0, false
		}
		limit = v
	}

	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			response.BadRequest(c, "无效的 offset 参数")
			return 0, 0, false
		}
		offset = v
	}

	return limit, offset, true
}
