package handler

import (
	"errors"
	"net/http"

	"vibetube-go/internal/api/dto"
	"vibetube-go/internal/api/middleware"
	"vibetube-go/internal/api/response"
	"vibetube-go/internal/service"
	"vibetube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register 用户注册
// @Summary 用户注册
// @Description 注册新用户账号
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 200 {object} map[string]string "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 409 {object} response.ErrorResponse "用户名已被占用"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Conflict(c, err.Error())
			return
		}
		logger.Error("Register failed", zap.Error(err))
		response.InternalError(c, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "creation successful!"})
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户登录获取 JWT Token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} dto.TokenData "登录成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "用户名或密码错误"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	tokenData, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrBadCredential) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Login failed", zap.Error(err))
		response.InternalError(c, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, tokenData)
}

// VerifyToken 校验 Token 并返回当前用户信息
// @Summary 校验 Token
// @Description 校验请求携带的 Token 并返回当前登录用户信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]dto.UserInfo "校验成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /verify-token [get]
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	userInfo, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		// Token 有效但账号已被删除
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, "User not found or token invalid")
			return
		}
		logger.Error("Get current user failed", zap.Error(err), zap.Int64("user_id", userID))
		response.InternalError(c, "获取用户信息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"details": userInfo})
}
