package handler

import (
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity()

	r.POST("/v1/comments", authorize, context.Wrap(h.CreateComment))
	r.DELETE("/v1/comments/:comment_id", authorize, context.Wrap(h.DeleteComment))
	r.GET("/v1/posts/:post_id/comments", context.Wrap(h.GetComments))
}

// CreateComment 发布评论
func (h *Comment) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	comment, err := h.CommentService.AddComment(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, comment)
	return nil
}

// DeleteComment 删除评论（仅作者）
func (h *Comment) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	commentID, err := paramUint64(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

// GetComments 获取帖子评论列表
func (h *Comment) GetComments(c *gin.Context) error {
	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return err
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	comments, err := h.CommentService.GetComments(c.Request.Context(), postID, req.Page, req.PageSize)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, comments)
	return nil
}
