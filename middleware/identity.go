package middleware

import (
	"net/http"
	"strconv"

	"Pulse/pkg/context"
	"Pulse/pkg/response"

	"github.com/gin-gonic/gin"
)

// IdentityHeader 上游认证网关注入的用户身份头
// 认证（token 校验、续期）在网关完成，这里只信任并透传身份
const IdentityHeader = "X-User-ID"

func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(IdentityHeader)
		if raw == "" {
			response.Abort(c, http.StatusUnauthorized, "未登录")
			return
		}

		uid, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || uid == 0 {
			response.Abort(c, http.StatusUnauthorized, "身份格式错误")
			return
		}

		c.Set(context.CtxUserID, uid)
		c.Next()
	}
}
