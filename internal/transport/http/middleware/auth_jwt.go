package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/core/auth"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 私有路由守门：缺失 / 无效 / 过期 token 一律 401，短路后续处理。
// requireRole 非空时再做角色校验（403）。
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Set(KeyUserID, claims.UserID())
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
