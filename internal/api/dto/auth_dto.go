package dto

import "time"

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=1,max=50"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	Password string  `json:"password" binding:"required,min=6,max=255"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=1,max=255"`
}

// TokenData 登录成功返回的 Token 信息
type TokenData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserInfo 用户公开信息（不含密码哈希）
type UserInfo struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	Email              *string   `json:"email"`
	ProfileImage       *string   `json:"profile_image"`
	ChannelDescription *string   `json:"channel_description"`
	CreatedAt          time.Time `json:"created_at"`
}
