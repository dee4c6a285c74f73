package service

import (
	"Pulse/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID, postID uint64) error
	Unlike(ctx context.Context, userID, postID uint64) error
	IsLiked(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCount(ctx context.Context, postID uint64) (int64, error)
}

type LikeService struct {
	PostDAO  PostStore
	LikeDAO  LikeStore
	StatsDAO PostStatsStore
	Counter  ICounterService
	Tx       Tx
}

// Like 点赞
// 与关注同一套契约：建边+计数在一个事务里，
// (post_id, user_id) 唯一索引兜底并发重复点赞
func (s *LikeService) Like(ctx context.Context, userID, postID uint64) error {
	// 校验帖子存在
	exist, err := s.PostDAO.ExistsByID(ctx, postID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrPostNotFound
	}

	// 检查用户是否已经点赞过
	isLiked, err := s.LikeDAO.IsLiked(ctx, postID, userID)
	if err != nil {
		return err
	}
	if isLiked {
		return ErrAlreadyLiked
	}

	return s.Tx.Transact(ctx, func(ctx context.Context) error {
		like := &models.PostLike{PostID: postID, UserID: userID, CreatedAt: time.Now()}
		if err := s.LikeDAO.Create(ctx, like); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return err
		}
		return s.Counter.AdjustPost(ctx, postID, PostFieldLikeCount, 1)
	})
}

// Unlike 取消点赞
// RowsAffected=0 说明点赞边已被并发删除，不减计数
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint64) error {
	exist, err := s.PostDAO.ExistsByID(ctx, postID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrPostNotFound
	}

	isLiked, err := s.LikeDAO.IsLiked(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !isLiked {
		return ErrNotLiked
	}

	return s.Tx.Transact(ctx, func(ctx context.Context) error {
		rows, err := s.LikeDAO.Delete(ctx, postID, userID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNotLiked
		}
		return s.Counter.AdjustPost(ctx, postID, PostFieldLikeCount, -1)
	})
}

// IsLiked 是否已点赞
func (s *LikeService) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	return s.LikeDAO.IsLiked(ctx, postID, userID)
}

// GetLikeCount 查询点赞数（读缓存计数，不数边）
func (s *LikeService) GetLikeCount(ctx context.Context, postID uint64) (int64, error) {
	stat, err := s.StatsDAO.GetByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	return stat.LikeCount, nil
}
