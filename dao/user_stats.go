package dao

import (
	"Pulse/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

// incr 单条语句原子增减指定计数列并限制不为负
// 不走「读-改-写」，并发增减不会丢更新
func (d *UserStatsDAO) incr(ctx context.Context, userID uint64, column string, delta int) error {
	now := time.Now()
	return d.conn(ctx).Exec(`
		INSERT INTO user_stats (user_id, `+column+`, created_at, updated_at)
		VALUES (?, GREATEST(?, 0), ?, ?)
		ON DUPLICATE KEY UPDATE
			`+column+` = GREATEST(`+column+` + ?, 0),
			updated_at = VALUES(updated_at)
	`, userID, delta, now, now, delta).Error
}

// IncrFollowerCount 增减粉丝数
func (d *UserStatsDAO) IncrFollowerCount(ctx context.Context, userID uint64, delta int) error {
	return d.incr(ctx, userID, "follower_count", delta)
}

// IncrFollowingCount 增减关注数
func (d *UserStatsDAO) IncrFollowingCount(ctx context.Context, userID uint64, delta int) error {
	return d.incr(ctx, userID, "following_count", delta)
}

// IncrPostCount 增减帖子数
func (d *UserStatsDAO) IncrPostCount(ctx context.Context, userID uint64, delta int) error {
	return d.incr(ctx, userID, "post_count", delta)
}

// GetByUserID 根据用户ID获取统计，不存在返回 nil
func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error) {
	return d.FindByWhere(ctx, "user_id = ?", userID)
}

// Overwrite 用权威值整体覆盖统计行（仅离线修复路径调用）
func (d *UserStatsDAO) Overwrite(ctx context.Context, userID uint64, followerCount, followingCount, postCount int64) error {
	now := time.Now()
	return d.conn(ctx).Exec(`
		INSERT INTO user_stats (user_id, follower_count, following_count, post_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			follower_count = VALUES(follower_count),
			following_count = VALUES(following_count),
			post_count = VALUES(post_count),
			updated_at = VALUES(updated_at)
	`, userID, followerCount, followingCount, postCount, now, now).Error
}
