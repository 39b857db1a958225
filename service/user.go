package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/log"
	"StudyHub/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	userProfileCacheKey = "user:profile:%d"
	userProfileCacheTTL = 10 * time.Minute
)

var _ IUserService = (*UserService)(nil)

type UserService struct {
	UserDAO *dao.Users
	Redis   *redis.Client
}

type IUserService interface {
	GetUserInfo(ctx context.Context, userID uint64) (*types.UserProfile, error)
	BatchGetUserInfo(ctx context.Context, userIDs []uint64) (map[uint64]*types.UserProfile, error)
	SearchUsers(ctx context.Context, keyword string, page, pageSize int) ([]types.UserProfile, error)
}

// GetUserInfo 查询用户公开信息，优先走缓存
func (us *UserService) GetUserInfo(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	key := fmt.Sprintf(userProfileCacheKey, userID)
	if raw, err := us.Redis.Get(ctx, key).Result(); err == nil {
		var profile types.UserProfile
		if err := json.Unmarshal([]byte(raw), &profile); err == nil {
			return &profile, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.L.Warn("读取用户缓存失败", zap.Uint64("user_id", userID), zap.Error(err))
	}

	user, err := us.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := toUserProfile(user)
	if raw, err := json.Marshal(profile); err == nil {
		if err := us.Redis.Set(ctx, key, raw, userProfileCacheTTL).Err(); err != nil {
			log.L.Warn("写入用户缓存失败", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}
	return profile, nil
}

// BatchGetUserInfo 批量查询用户信息，列表页填充作者时使用
func (us *UserService) BatchGetUserInfo(ctx context.Context, userIDs []uint64) (map[uint64]*types.UserProfile, error) {
	result := make(map[uint64]*types.UserProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	seen := make(map[uint64]struct{}, len(userIDs))
	distinct := make([]uint64, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	users, err := us.UserDAO.BatchFindByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.ID] = toUserProfile(user)
	}
	return result, nil
}

// SearchUsers 按用户名或邮箱搜索用户
func (us *UserService) SearchUsers(ctx context.Context, keyword string, page, pageSize int) ([]types.UserProfile, error) {
	offset, limit := normalizePage(page, pageSize)
	users, err := us.UserDAO.Search(ctx, keyword, offset, limit)
	if err != nil {
		return nil, err
	}
	profiles := make([]types.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, *toUserProfile(user))
	}
	return profiles, nil
}

func toUserProfile(user *models.Users) *types.UserProfile {
	return &types.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
	}
}
