package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"vibetube-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// HashPassword 使用 bcrypt 对密码进行哈希，盐值每次随机生成
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword 验证密码是否与哈希匹配，哈希格式非法时返回 false 而不报错
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// TokenMaker JWT 签发与校验器
// 密钥、算法、有效期来自启动时注入的配置，进程内不可变；
// 共享同一密钥的实例签发的 Token 可以互相校验（无服务端会话）
type TokenMaker struct {
	secret []byte
	method jwt.SigningMethod
	issuer string
	expire time.Duration
}

// NewTokenMaker 根据 JWT 配置构造 TokenMaker，算法不支持时报错
func NewTokenMaker(cfg *config.JWTConfig, issuer string) (*TokenMaker, error) {
	alg := cfg.Algorithm
	if alg == "" {
		alg = "HS256"
	}
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", alg)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", alg)
	}

	return &TokenMaker{
		secret: []byte(cfg.Secret),
		method: method,
		issuer: issuer,
		expire: cfg.ExpireDuration(),
	}, nil
}

// Generate 为指定用户签发 Token，使用默认有效期
func (m *TokenMaker) Generate(userID int64) (string, error) {
	return m.GenerateWithTTL(userID, m.expire)
}

// GenerateWithTTL 为指定用户签发 Token，sub 为用户 ID 字符串，exp 为绝对过期时刻
func (m *TokenMaker) GenerateWithTTL(userID int64, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    m.issuer,
	}

	token := jwt.NewWithClaims(m.method, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse 解析并校验 Token，返回 sub 声明中的用户 ID
// 签名不符、结构非法或缺少 sub 返回 ErrInvalidToken，已过期返回 ErrExpiredToken
func (m *TokenMaker) Parse(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
