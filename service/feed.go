package service

import (
	"Pulse/models"
	"context"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage 页码/页大小归一化
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GetFeed(ctx context.Context, viewerID uint64, page, pageSize int) ([]*models.Post, error)
	GetUserPosts(ctx context.Context, username string, page, pageSize int) ([]*models.Post, error)
}

type FeedService struct {
	UserDAO   UserStore
	FollowDAO FollowStore
	PostDAO   PostStore
}

// GetFeed 读时扇出的时间线
// 候选作者集 = 关注的人 ∪ 自己（自己的帖子始终进 feed，这是刻意的设计，
// 不是 bug），然后对候选集按 created_at 倒序、id 倒序兜底做确定性分页。
// 不维护按粉丝物化的时间线：这个数据规模下读时扇出更便宜，而且新关注
// 一个人时对方的历史帖子立即可见，不需要回填任务
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint64, page, pageSize int) ([]*models.Post, error) {
	page, pageSize = normalizePage(page, pageSize)

	followeeIDs, err := s.FollowDAO.ListFolloweeIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followeeIDs, viewerID)

	offset := (page - 1) * pageSize
	return s.PostDAO.FindByAuthors(ctx, authorIDs, pageSize, offset)
}

// GetUserPosts 按用户名查询其帖子列表，排序分页契约与 feed 一致
func (s *FeedService) GetUserPosts(ctx context.Context, username string, page, pageSize int) ([]*models.Post, error) {
	page, pageSize = normalizePage(page, pageSize)

	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	offset := (page - 1) * pageSize
	return s.PostDAO.FindByAuthors(ctx, []uint64{user.ID}, pageSize, offset)
}
