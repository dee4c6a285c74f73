package types

import "Pulse/models"

type CreatePostRequest struct {
	Caption  string `json:"caption" binding:"required"`
	MediaURL string `json:"media_url"`
}

// PostDetail 帖子详情（帖子+缓存计数）
type PostDetail struct {
	Post         *models.Post `json:"post"`
	LikeCount    int64        `json:"like_count"`
	CommentCount int64        `json:"comment_count"`
}

// PageRequest 通用分页参数
type PageRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// FeedResponse feed 响应
type FeedResponse struct {
	Posts    []*models.Post `json:"posts"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	HasMore  bool           `json:"has_more"`
}
