package handler

import (
	"Pulse/pkg/log"
	"Pulse/pkg/response"
	"Pulse/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bizError 把 service 层的业务错误映射为 HTTP 状态码
// 未识别的错误视为存储层瞬时故障：记日志、对外只报 500，不泄露内部细节
func bizError(err error) *response.BizError {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrNotFollowing),
		errors.Is(err, service.ErrNotLiked):
		return response.NewError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken):
		return response.NewError(http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrSelfFollow):
		return response.NewError(http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrNotPostOwner),
		errors.Is(err, service.ErrNotCommentAuthor):
		return response.NewError(http.StatusForbidden, err.Error())

	default:
		log.L.Error("internal error", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "系统繁忙，请稍后再试")
	}
}

// paramUint64 解析路径参数中的数字ID
func paramUint64(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 "+name)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return v, nil
}
