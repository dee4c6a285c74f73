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

type Post struct {
	PostService service.IPostService
	FeedService service.IFeedService
	LikeService service.ILikeService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity()

	g := r.Group("/v1/posts")
	g.POST("", authorize, context.Wrap(p.CreatePost))
	g.GET("/:post_id", context.Wrap(p.GetPost))
	g.DELETE("/:post_id", authorize, context.Wrap(p.DeletePost))
	g.POST("/:post_id/like", authorize, context.Wrap(p.LikePost))
	g.DELETE("/:post_id/like", authorize, context.Wrap(p.UnlikePost))

	r.GET("/v1/feed", authorize, context.Wrap(p.GetFeed))
	r.GET("/v1/profiles/:username/posts", context.Wrap(p.GetUserPosts))
}

// CreatePost 发帖
func (p *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	postID, err := p.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"post_id": postID})
	return nil
}

// GetPost 获取帖子详情
func (p *Post) GetPost(c *gin.Context) error {
	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return err
	}

	detail, err := p.PostService.GetPost(c.Request.Context(), postID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, detail)
	return nil
}

// DeletePost 删帖（仅作者）
func (p *Post) DeletePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return err
	}

	if err := p.PostService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

// LikePost 点赞
func (p *Post) LikePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return err
	}

	if err := p.LikeService.Like(c.Request.Context(), userID, postID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"liked": true})
	return nil
}

// UnlikePost 取消点赞
func (p *Post) UnlikePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return err
	}

	if err := p.LikeService.Unlike(c.Request.Context(), userID, postID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"liked": false})
	return nil
}

// GetFeed 获取时间线（关注的人+自己的帖子，倒序分页）
func (p *Post) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	posts, err := p.FeedService.GetFeed(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.FeedResponse{
		Posts:    posts,
		Page:     req.Page,
		PageSize: req.PageSize,
		HasMore:  len(posts) == req.PageSize,
	})
	return nil
}

// GetUserPosts 按用户名获取其帖子列表
func (p *Post) GetUserPosts(c *gin.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.NewError(http.StatusBadRequest, "缺少 username")
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	posts, err := p.FeedService.GetUserPosts(c.Request.Context(), username, req.Page, req.PageSize)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, posts)
	return nil
}
