package service

import (
	"context"
	"time"

	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/jwt"
	"StudyHub/pkg/snowflake"
	"StudyHub/types"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.Users
}

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

// Register 注册新用户，注册成功后直接下发访问令牌
func (as *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	exist, err := as.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		ID:       uint64(snowflake.GenUserID()),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := as.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return as.issueToken(user.ID)
}

// Login 密码登录
func (as *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := as.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrBadCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrBadCredential
	}
	return as.issueToken(user.ID)
}

func (as *AuthService) issueToken(userID uint64) (*types.LoginResponse, error) {
	expire := time.Duration(as.Config.Jwt.Expire) * time.Second
	token, err := jwt.GenerateToken([]byte(as.Config.Jwt.Secret), userID, "access", expire)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		UserID:      userID,
		AccessToken: token,
		ExpiresIn:   as.Config.Jwt.Expire,
	}, nil
}
