package service

import (
	"Pulse/pkg/log"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// 计数字段
// 计数列是关系行的派生缓存，所有增减都走存储层的单语句原子 UPSERT
type UserCounterField string

const (
	UserFieldFollowerCount  UserCounterField = "follower_count"
	UserFieldFollowingCount UserCounterField = "following_count"
	UserFieldPostCount      UserCounterField = "post_count"
)

type PostCounterField string

const (
	PostFieldLikeCount    PostCounterField = "like_count"
	PostFieldCommentCount PostCounterField = "comment_count"
)

var _ ICounterService = (*CounterService)(nil)

type ICounterService interface {
	AdjustUser(ctx context.Context, userID uint64, field UserCounterField, delta int) error
	AdjustPost(ctx context.Context, postID uint64, field PostCounterField, delta int64) error
	RecountUser(ctx context.Context, userID uint64) error
	RecountPost(ctx context.Context, postID uint64) error
}

type CounterService struct {
	UserStatsDAO UserStatsStore
	PostStatsDAO PostStatsStore
	FollowDAO    FollowStore
	PostDAO      PostStore
	LikeDAO      LikeStore
	CommentDAO   CommentStore
}

// AdjustUser 原子增减用户侧计数，delta 只允许 ±1
func (s *CounterService) AdjustUser(ctx context.Context, userID uint64, field UserCounterField, delta int) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("counter: delta 只能为 ±1，收到 %d", delta)
	}
	switch field {
	case UserFieldFollowerCount:
		return s.UserStatsDAO.IncrFollowerCount(ctx, userID, delta)
	case UserFieldFollowingCount:
		return s.UserStatsDAO.IncrFollowingCount(ctx, userID, delta)
	case UserFieldPostCount:
		return s.UserStatsDAO.IncrPostCount(ctx, userID, delta)
	default:
		return fmt.Errorf("counter: 未知的用户计数字段 %q", field)
	}
}

// AdjustPost 原子增减帖子侧计数，delta 只允许 ±1
func (s *CounterService) AdjustPost(ctx context.Context, postID uint64, field PostCounterField, delta int64) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("counter: delta 只能为 ±1，收到 %d", delta)
	}
	switch field {
	case PostFieldLikeCount:
		return s.PostStatsDAO.IncrLikeCount(ctx, postID, delta)
	case PostFieldCommentCount:
		return s.PostStatsDAO.IncrCommentCount(ctx, postID, delta)
	default:
		return fmt.Errorf("counter: 未知的帖子计数字段 %q", field)
	}
}

// RecountUser 离线修复：从关注边/帖子行重算权威计数并整体覆盖缓存
// 这是唯一允许全量重算的路径，热路径永远不走这里
func (s *CounterService) RecountUser(ctx context.Context, userID uint64) error {
	followers, err := s.FollowDAO.CountFollowers(ctx, userID)
	if err != nil {
		return err
	}
	following, err := s.FollowDAO.CountFollowing(ctx, userID)
	if err != nil {
		return err
	}
	posts, err := s.PostDAO.CountByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.UserStatsDAO.Overwrite(ctx, userID, followers, following, posts); err != nil {
		return err
	}
	log.L.Info("user stats recounted",
		zap.Uint64("user_id", userID),
		zap.Int64("follower_count", followers),
		zap.Int64("following_count", following),
		zap.Int64("post_count", posts),
	)
	return nil
}

// RecountPost 离线修复：从点赞边/评论行重算帖子计数并覆盖缓存
func (s *CounterService) RecountPost(ctx context.Context, postID uint64) error {
	likes, err := s.LikeDAO.CountByPostID(ctx, postID)
	if err != nil {
		return err
	}
	comments, err := s.CommentDAO.CountByPostID(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.PostStatsDAO.Overwrite(ctx, postID, likes, comments); err != nil {
		return err
	}
	log.L.Info("post stats recounted",
		zap.Uint64("post_id", postID),
		zap.Int64("like_count", likes),
		zap.Int64("comment_count", comments),
	)
	return nil
}
