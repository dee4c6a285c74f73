package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

const (
	PostStatusDeleted = 0
	PostStatusNormal  = 1
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// GetByID 查询未删除的帖子，不存在返回 nil
func (d *PostDAO) GetByID(ctx context.Context, postID uint64) (*models.Post, error) {
	return d.FindByWhere(ctx, "id = ? AND status = ?", postID, PostStatusNormal)
}

// ExistsByID 判断帖子是否存在（未删除）
func (d *PostDAO) ExistsByID(ctx context.Context, postID uint64) (bool, error) {
	return d.IsExist(ctx, "id = ? AND status = ?", postID, PostStatusNormal)
}

// FindByAuthors 查询候选作者集内的帖子
// 排序: created_at 倒序，id 倒序兜底，保证时间戳相同时分页依然确定
func (d *PostDAO) FindByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*models.Post, error) {
	if len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}
	var posts []*models.Post
	err := d.conn(ctx).
		Where("user_id IN ? AND status = ?", authorIDs, PostStatusNormal).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// UpdateStatus 更新帖子状态，返回受影响行数
func (d *PostDAO) UpdateStatus(ctx context.Context, postID uint64, status int) (int64, error) {
	res := d.conn(ctx).
		Model(&models.Post{}).
		Where("id = ? AND status <> ?", postID, status).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// CountByUserID 统计用户未删除的帖子数（权威值，仅离线修复使用）
func (d *PostDAO) CountByUserID(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.conn(ctx).
		Model(&models.Post{}).
		Where("user_id = ? AND status = ?", userID, PostStatusNormal).
		Count(&count).Error
	return count, err
}
