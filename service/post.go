package service

import (
	"Pulse/models"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"errors"
	"strings"
	"time"
)

const (
	postStatusDeleted = 0
	postStatusNormal  = 1
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (uint64, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
	GetPost(ctx context.Context, postID uint64) (*types.PostDetail, error)
}

type PostService struct {
	UserDAO  UserStore
	PostDAO  PostStore
	StatsDAO PostStatsStore
	Counter  ICounterService
	Tx       Tx
}

// CreatePost 发帖
// 帖子行和作者的 post_count 增量在同一个事务里提交
func (s *PostService) CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (uint64, error) {
	if strings.TrimSpace(req.Caption) == "" {
		return 0, errors.New("内容不能为空")
	}

	exist, err := s.UserDAO.ExistsByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, ErrUserNotFound
	}

	now := time.Now()
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Caption:   req.Caption,
		MediaURL:  req.MediaURL,
		Status:    postStatusNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.Tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.PostDAO.Create(ctx, post); err != nil {
			return err
		}
		return s.Counter.AdjustUser(ctx, userID, UserFieldPostCount, 1)
	})
	if err != nil {
		return 0, err
	}
	return post.ID, nil
}

// DeletePost 删帖
// 只允许作者删除；软删除和 post_count 减量同一个事务，
// RowsAffected=0 说明已被并发删除，不再减计数
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}

	return s.Tx.Transact(ctx, func(ctx context.Context) error {
		rows, err := s.PostDAO.UpdateStatus(ctx, postID, postStatusDeleted)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrPostNotFound
		}
		return s.Counter.AdjustUser(ctx, userID, UserFieldPostCount, -1)
	})
}

// GetPost 获取帖子详情（帖子+缓存计数）
func (s *PostService) GetPost(ctx context.Context, postID uint64) (*types.PostDetail, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	stat, err := s.StatsDAO.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &types.PostDetail{
		Post:         post,
		LikeCount:    stat.LikeCount,
		CommentCount: stat.CommentCount,
	}, nil
}
