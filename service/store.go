package service

import (
	"Pulse/models"
	"context"
)

// 存储抽象
// service 层只依赖这些接口，构造时显式传入 dao 实现（见 wire.go），
// 测试用内存实现替换

type UserStore interface {
	FindByID(ctx context.Context, id uint64) (*models.Users, error)
	FindByUsername(ctx context.Context, username string) (*models.Users, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	IsUsernameExist(ctx context.Context, username string) (bool, error)
	IsEmailExist(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.Users) error
	UpdateByID(ctx context.Context, id uint64, data map[string]any) error
}

type FollowStore interface {
	Get(ctx context.Context, followerID, followeeID uint64) (*models.UserFollow, error)
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	Create(ctx context.Context, edge *models.UserFollow) error
	Delete(ctx context.Context, followerID, followeeID uint64) (int64, error)
	ListFolloweeIDs(ctx context.Context, followerID uint64) ([]uint64, error)
	CountFollowers(ctx context.Context, userID uint64) (int64, error)
	CountFollowing(ctx context.Context, userID uint64) (int64, error)
	GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingQueryResult, int64, error)
}

type UserStatsStore interface {
	IncrFollowerCount(ctx context.Context, userID uint64, delta int) error
	IncrFollowingCount(ctx context.Context, userID uint64, delta int) error
	IncrPostCount(ctx context.Context, userID uint64, delta int) error
	GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error)
	Overwrite(ctx context.Context, userID uint64, followerCount, followingCount, postCount int64) error
}

type PostStore interface {
	GetByID(ctx context.Context, postID uint64) (*models.Post, error)
	ExistsByID(ctx context.Context, postID uint64) (bool, error)
	Create(ctx context.Context, post *models.Post) error
	FindByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*models.Post, error)
	UpdateStatus(ctx context.Context, postID uint64, status int) (int64, error)
	CountByUserID(ctx context.Context, userID uint64) (int64, error)
}

type PostStatsStore interface {
	IncrLikeCount(ctx context.Context, postID uint64, delta int64) error
	IncrCommentCount(ctx context.Context, postID uint64, delta int64) error
	GetByPostID(ctx context.Context, postID uint64) (*models.PostStats, error)
	Overwrite(ctx context.Context, postID uint64, likeCount, commentCount int64) error
}

type LikeStore interface {
	IsLiked(ctx context.Context, postID, userID uint64) (bool, error)
	Create(ctx context.Context, like *models.PostLike) error
	Delete(ctx context.Context, postID, userID uint64) (int64, error)
	CountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type CommentStore interface {
	GetByID(ctx context.Context, commentID uint64) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	MarkDeleted(ctx context.Context, commentID uint64) (int64, error)
	FindByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*models.Comment, error)
	CountByPostID(ctx context.Context, postID uint64) (int64, error)
}

// Tx 事务边界
// 关系行变更和配套计数增减必须落进同一个 Transact 调用
type Tx interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}
