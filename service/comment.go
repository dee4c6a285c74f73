package service

import (
	"Pulse/models"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"errors"
	"strings"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	AddComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	GetComments(ctx context.Context, postID uint64, page, pageSize int) ([]*models.Comment, error)
	GetCommentCount(ctx context.Context, postID uint64) (int64, error)
}

type CommentService struct {
	PostDAO    PostStore
	CommentDAO CommentStore
	StatsDAO   PostStatsStore
	Counter    ICounterService
	Tx         Tx
}

// AddComment 发布评论
// 评论行和帖子的 comment_count 增量在同一个事务里提交
func (s *CommentService) AddComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*models.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("评论内容不能为空")
	}

	exist, err := s.PostDAO.ExistsByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		ID:      uint64(snowflake.GenID()),
		PostID:  req.PostID,
		UserID:  userID,
		Content: req.Content,
		Status:  1,
	}
	err = s.Tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.CommentDAO.Create(ctx, comment); err != nil {
			return err
		}
		return s.Counter.AdjustPost(ctx, req.PostID, PostFieldCommentCount, 1)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment 删除评论
// 只允许评论作者删除；软删除和计数减量同一个事务，
// RowsAffected=0 说明已被并发删除，不再减计数
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotCommentAuthor
	}

	return s.Tx.Transact(ctx, func(ctx context.Context) error {
		rows, err := s.CommentDAO.MarkDeleted(ctx, commentID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrCommentNotFound
		}
		return s.Counter.AdjustPost(ctx, comment.PostID, PostFieldCommentCount, -1)
	})
}

// GetComments 获取帖子评论列表（按时间倒序）
func (s *CommentService) GetComments(ctx context.Context, postID uint64, page, pageSize int) ([]*models.Comment, error) {
	page, pageSize = normalizePage(page, pageSize)

	exist, err := s.PostDAO.ExistsByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}
	return s.CommentDAO.FindByPostID(ctx, postID, pageSize, (page-1)*pageSize)
}

// GetCommentCount 查询评论数（读缓存计数，不数行）
func (s *CommentService) GetCommentCount(ctx context.Context, postID uint64) (int64, error) {
	stat, err := s.StatsDAO.GetByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	return stat.CommentCount, nil
}
