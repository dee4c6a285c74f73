package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

type PostStatsDAO struct {
	Repo[models.PostStats]
}

func NewPostStatsDAO(db *gorm.DB) *PostStatsDAO {
	return &PostStatsDAO{Repo: NewRepo[models.PostStats](db)}
}

// IncrLikeCount 点赞计数增减，避免负数
func (d *PostStatsDAO) IncrLikeCount(ctx context.Context, postID uint64, delta int64) error {
	// 使用原生 SQL 做 UPSERT 并限制不为负
	return d.conn(ctx).Exec(
		"INSERT INTO post_stats (post_id, like_count, updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE like_count = GREATEST(like_count + ?, 0), updated_at = NOW()",
		postID, delta, delta,
	).Error
}

// IncrCommentCount 评论计数增减，避免负数
func (d *PostStatsDAO) IncrCommentCount(ctx context.Context, postID uint64, delta int64) error {
	return d.conn(ctx).Exec(
		"INSERT INTO post_stats (post_id, comment_count, updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE comment_count = GREATEST(comment_count + ?, 0), updated_at = NOW()",
		postID, delta, delta,
	).Error
}

// GetByPostID 获取帖子统计，未建行时返回零值
func (d *PostStatsDAO) GetByPostID(ctx context.Context, postID uint64) (*models.PostStats, error) {
	var item models.PostStats
	err := d.conn(ctx).Where("post_id = ?", postID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.PostID == 0 {
		return &models.PostStats{PostID: postID}, nil
	}
	return &item, nil
}

// Overwrite 用权威值整体覆盖统计行（仅离线修复路径调用）
func (d *PostStatsDAO) Overwrite(ctx context.Context, postID uint64, likeCount, commentCount int64) error {
	return d.conn(ctx).Exec(
		"INSERT INTO post_stats (post_id, like_count, comment_count, updated_at) VALUES (?, ?, ?, NOW()) "+
			"ON DUPLICATE KEY UPDATE like_count = VALUES(like_count), comment_count = VALUES(comment_count), updated_at = NOW()",
		postID, likeCount, commentCount,
	).Error
}
