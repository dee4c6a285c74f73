package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// Get 查询关注边，不存在返回 nil
func (d *UserFollowDAO) Get(ctx context.Context, followerID, followeeID uint64) (*models.UserFollow, error) {
	return d.FindByWhere(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
}

// Delete 删除关注边，返回受影响行数
// 并发取关时只有一个调用者拿到 1，另一个拿到 0，计数只会减一次
func (d *UserFollowDAO) Delete(ctx context.Context, followerID, followeeID uint64) (int64, error) {
	res := d.conn(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.UserFollow{})
	return res.RowsAffected, res.Error
}

// ListFolloweeIDs 获取用户关注的全部用户ID（feed 扇出的候选作者集）
func (d *UserFollowDAO) ListFolloweeIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.conn(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	return ids, err
}

// CountFollowers 统计粉丝数（权威值，仅离线修复使用）
func (d *UserFollowDAO) CountFollowers(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.conn(ctx).
		Model(&models.UserFollow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountFollowing 统计关注数（权威值，仅离线修复使用）
func (d *UserFollowDAO) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.conn(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

// GetFollowingList 获取用户关注的用户列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error) {
	var follows []*models.FollowingQueryResult
	var total int64

	err := d.conn(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	// 联接用户表获取用户信息，按创建时间倒序
	err = d.conn(ctx).
		Table("user_follows uf").
		Select("u.id as user_id, u.username, u.nickname, u.avatar, uf.created_at as follow_time").
		Joins("LEFT JOIN users u ON uf.followee_id = u.id").
		Where("uf.follower_id = ?", userID).
		Order("uf.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&follows).Error

	return follows, total, err
}
