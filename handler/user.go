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

type User struct {
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Identity()

	r.POST("/v1/register", context.Wrap(u.Register))
	r.GET("/v1/profiles/:username", context.Wrap(u.GetProfile))
	r.PUT("/v1/profile", authorize, context.Wrap(u.UpdateProfile))
}

// Register 注册用户
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"user_id": user.ID, "username": user.Username})
	return nil
}

// GetProfile 获取用户资料（含缓存计数）
func (u *User) GetProfile(c *gin.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.NewError(http.StatusBadRequest, "缺少 username")
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), username)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, profile)
	return nil
}

// UpdateProfile 更新个人资料
func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := u.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}
