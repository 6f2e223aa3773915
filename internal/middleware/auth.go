package middleware

import (
	"net/http"
	"satlink/internal/db"
	"satlink/internal/models"
	"strconv"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser 从上游网关注入的 X-User-ID 头加载当前用户。
// 令牌校验由网关完成，这里只负责把用户装进请求上下文。
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-User-ID")
		if header != "" {
			if id, err := strconv.ParseUint(header, 10, 64); err == nil {
				var user models.User
				if result := db.DB.First(&user, uint(id)); result.Error == nil {
					c.Set(CheckUserKey, &user)
				}
			}
		}
		c.Next()
	}
}

// AuthRequired ensures an identified user is present
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}
		c.Next()
	}
}
