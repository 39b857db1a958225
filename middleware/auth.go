package middleware

import (
	"net/http"
	"strings"
	"time"

	"StudyHub/pkg/jwt"
	"StudyHub/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 强制登录校验，解析 Bearer Token 并把 user_id 放进上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		// 快过期的令牌顺手续期，前端从响应头换新
		if time.Until(claims.ExpiresAt.Time) < 5*time.Minute {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, "access", time.Hour)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// OptionalAuth 可选登录，带合法令牌则注入 user_id，否则放行
// 列表接口用它区分 "我关注的" 等登录态过滤
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
					c.Set("user_id", claims.UserID)
				}
			}
		}
		c.Next()
	}
}
