package service

import (
	"Pulse/models"
	"Pulse/types"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	GetProfile(ctx context.Context, username string) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error
}

type UserService struct {
	UserDAO  UserStore
	StatsDAO UserStatsStore
}

// Register 注册用户
// 用户名/邮箱先查后插，唯一索引兜底并发注册
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errors.New("用户名不能为空")
	}

	taken, err := s.UserDAO.IsUsernameExist(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.UserDAO.IsEmailExist(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	user := &models.Users{
		Username:   username,
		Email:      req.Email,
		Nickname:   req.Nickname,
		Credential: req.Credential,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// GetProfile 获取用户资料（含缓存计数）
func (s *UserService) GetProfile(ctx context.Context, username string) (*types.UserProfile, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := &types.UserProfile{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Bio:      user.Bio,
	}
	stats, err := s.StatsDAO.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		profile.FollowerCount = int64(stats.FollowerCount)
		profile.FollowingCount = int64(stats.FollowingCount)
		profile.PostCount = int64(stats.PostCount)
	}
	return profile, nil
}

// UpdateProfile 更新用户资料
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	data := map[string]any{}
	if req.Nickname != nil {
		data["nickname"] = *req.Nickname
	}
	if req.Avatar != nil {
		data["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		data["bio"] = *req.Bio
	}
	if len(data) == 0 {
		return nil
	}
	data["updated_at"] = time.Now()
	return s.UserDAO.UpdateByID(ctx, userID, data)
}
