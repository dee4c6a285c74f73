package service

import "errors"

// 业务错误
// handler 层按 errors.Is 映射到 HTTP 状态码，存储层错误不外露
var (
	// NotFound
	ErrUserNotFound    = errors.New("用户不存在")
	ErrPostNotFound    = errors.New("帖子不存在")
	ErrCommentNotFound = errors.New("评论不存在")
	ErrNotFollowing    = errors.New("尚未关注该用户")
	ErrNotLiked        = errors.New("尚未点赞")

	// Conflict
	ErrAlreadyFollowing = errors.New("已经关注过了")
	ErrAlreadyLiked     = errors.New("已经点赞过了")
	ErrUsernameTaken    = errors.New("用户名已被占用")
	ErrEmailTaken       = errors.New("邮箱已被注册")

	// InvalidOperation
	ErrSelfFollow = errors.New("不能关注自己")

	// Forbidden
	ErrNotPostOwner     = errors.New("只能删除自己的帖子")
	ErrNotCommentAuthor = errors.New("只能删除自己的评论")
)
