package service

import (
	"Pulse/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID uint64) (*models.UserFollow, error)
	Unfollow(ctx context.Context, followerID, followeeID uint64) error
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
}

type FollowService struct {
	UserDAO   UserStore
	FollowDAO FollowStore
	StatsDAO  UserStatsStore
	Counter   ICounterService
	Tx        Tx
}

// Follow 关注用户
// 建边和两侧计数增量在同一个事务里提交，
// (follower_id, followee_id) 唯一索引兜底并发：两个并发 Follow
// 只有一个能建边，另一个拿到重复键错误并返回冲突，不会重复计数
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint64) (*models.UserFollow, error) {
	// 不能关注自己
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	// 校验被关注用户是否存在
	exist, err := s.UserDAO.ExistsByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrUserNotFound
	}

	// 检查是否已经关注（唯一索引是兜底，这里是主检测）
	isFollowing, err := s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if isFollowing {
		return nil, ErrAlreadyFollowing
	}

	edge := &models.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	err = s.Tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.FollowDAO.Create(ctx, edge); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyFollowing
			}
			return err
		}
		// 关注人的关注数+1，被关注人的粉丝数+1
		if err := s.Counter.AdjustUser(ctx, followerID, UserFieldFollowingCount, 1); err != nil {
			return err
		}
		return s.Counter.AdjustUser(ctx, followeeID, UserFieldFollowerCount, 1)
	})
	if err != nil {
		return nil, err
	}
	return edge, nil
}

// Unfollow 取消关注
// 删边和两侧计数减量在同一个事务里提交；
// RowsAffected=0 说明边已被并发删除，直接返回未关注，不减计数
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	edge, err := s.FollowDAO.Get(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if edge == nil {
		return ErrNotFollowing
	}

	return s.Tx.Transact(ctx, func(ctx context.Context) error {
		rows, err := s.FollowDAO.Delete(ctx, followerID, followeeID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNotFollowing
		}
		if err := s.Counter.AdjustUser(ctx, followerID, UserFieldFollowingCount, -1); err != nil {
			return err
		}
		return s.Counter.AdjustUser(ctx, followeeID, UserFieldFollowerCount, -1)
	})
}

// IsFollowing 检查是否已关注
// 自己对自己恒为 false，不发起查询
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	if followerID == followeeID {
		return false, nil
	}
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

// GetFollowerCount 查询粉丝数（读缓存计数，不数边）
func (s *FollowService) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowerCount), nil
}

// GetFollowingCount 查询关注数（读缓存计数，不数边）
func (s *FollowService) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if stats == nil {
		return 0, nil
	}
	return int64(stats.FollowingCount), nil
}

// GetFollowingList 获取关注列表（按关注时间倒序）
func (s *FollowService) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	return s.FollowDAO.GetFollowingList(ctx, userID, limit, offset)
}
