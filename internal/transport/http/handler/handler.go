// Package handler HTTP 处理器。处理器只做参数绑定、归属校验和错误归类，
// 业务规则在 feature 包，存取在 repo。
package handler

import (
	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/middleware"
)

// currentUser 按 JWT 主体加载调用方，找不到按 404 处理（token 有效但账号已不存在）。
// 已停用的账号即便持有效 token 也拒绝。
func currentUser(c *gin.Context, users domain.UserRepository) (*domain.User, error) {
	uid := c.GetString(middleware.KeyUserID)
	if uid == "" {
		return nil, apperr.Unauthorized("Not authorized")
	}
	u, err := users.FindByID(uid)
	if err != nil {
		return nil, apperr.Internal("failed to load user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	if !u.IsActive {
		return nil, apperr.Forbidden("Account has been deactivated")
	}
	return u, nil
}
