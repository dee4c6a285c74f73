package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// IsLiked 是否已点赞
func (d *PostLikeDAO) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

// Delete 删除点赞边，返回受影响行数
func (d *PostLikeDAO) Delete(ctx context.Context, postID, userID uint64) (int64, error) {
	res := d.conn(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{})
	return res.RowsAffected, res.Error
}

// CountByPostID 统计帖子点赞数（权威值，仅离线修复使用）
func (d *PostLikeDAO) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.conn(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
