package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware 读取上游网关注入的用户标识
// 认证在网关层完成，这里只要求X-User-ID存在
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未提供用户标识"})
			return
		}

		// 将 uid 存储在 gin.Context 中
		c.Set("uid", userID)
		c.Next()
	}
}
