package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

const (
	CommentStatusDeleted = 0
	CommentStatusNormal  = 1
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetByID 根据ID获取未删除的评论，不存在返回 nil
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	return d.FindByWhere(ctx, "id = ? AND status = ?", commentID, CommentStatusNormal)
}

// MarkDeleted 软删除评论，返回受影响行数
// 并发删除同一条评论时只有一个调用者拿到 1，计数只会减一次
func (d *CommentDAO) MarkDeleted(ctx context.Context, commentID uint64) (int64, error) {
	res := d.conn(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND status = ?", commentID, CommentStatusNormal).
		Update("status", CommentStatusDeleted)
	return res.RowsAffected, res.Error
}

// FindByPostID 获取帖子的评论列表（按时间倒序）
func (d *CommentDAO) FindByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.conn(ctx).
		Where("post_id = ? AND status = ?", postID, CommentStatusNormal).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

// CountByPostID 统计帖子未删除的评论数（权威值，仅离线修复使用）
func (d *CommentDAO) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.conn(ctx).
		Model(&models.Comment{}).
		Where("post_id = ? AND status = ?", postID, CommentStatusNormal).
		Count(&count).Error
	return count, err
}
