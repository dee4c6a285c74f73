package types

type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}
