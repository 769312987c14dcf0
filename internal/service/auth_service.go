package service

import (
	"errors"

	"vibetube-go/internal/api/dto"
	"vibetube-go/internal/model"
	"vibetube-go/internal/repository"
	"vibetube-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("用户不存在")
	ErrUsernameTaken = errors.New("Username is already taken")
	ErrBadCredential = errors.New("Incorrect password")
)

type AuthService struct {
	userRepo   *repository.UserRepository
	tokenMaker *utils.TokenMaker
}

func NewAuthService(userRepo *repository.UserRepository, tokenMaker *utils.TokenMaker) *AuthService {
	return &AuthService{userRepo: userRepo, tokenMaker: tokenMaker}
}

// Register 用户注册
// 用户名已存在时返回 ErrUsernameTaken，不写入任何数据
func (s *AuthService) Register(req *dto.RegisterRequest) (*model.User, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 并发注册同名用户时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login 用户登录，校验密码后签发 Token
// 用户名不存在返回 ErrUserNotFound，密码不匹配返回 ErrBadCredential
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrBadCredential
	}

	token, err := s.tokenMaker.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// GetCurrentUser 根据用户 ID 获取用户信息
// Token 仍有效但账号已删除时返回 ErrUserNotFound
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		ProfileImage:       user.ProfileImage,
		ChannelDescription: user.ChannelDescription,
		CreatedAt:          user.CreatedAt,
	}
}
