package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/response"
)

// AdminHandler 管理端：用户列表 + 停用。挂载分组需带 AuthJWT(jwter, "admin")。
type AdminHandler struct {
	users domain.UserRepository
}

func NewAdminHandler(users domain.UserRepository) *AdminHandler {
	return &AdminHandler{users: users}
}

func (h *AdminHandler) Mount(admin *gin.RouterGroup) {
	admin.GET("/users", h.ListUsers)
	admin.POST("/users/:id/deactivate", h.DeactivateUser)
}

type adminUserRow struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsers GET /api/admin/users?offset=&limit=&q=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	offset := atoiDefault(c.Query("offset"), 0)
	limit := atoiDefault(c.Query("limit"), 20)
	if limit > 100 {
		limit = 20
	}

	users, total, err := h.users.List(offset, limit, c.Query("q"))
	if err != nil {
		response.Fail(c, apperr.Internal("failed to list users", err))
		return
	}

	items := make([]adminUserRow, 0, len(users))
	for _, u := range users {
		items = append(items, adminUserRow{
			ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role,
			IsActive: u.IsActive, CreatedAt: u.CreatedAt,
		})
	}
	response.JSON(c, 200, gin.H{"total": total, "items": items})
}

// DeactivateUser POST /api/admin/users/:id/deactivate
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, apperr.NotFound("User not found"))
			return
		}
		response.Fail(c, apperr.Internal("failed to deactivate user", err))
		return
	}
	response.JSON(c, 200, gin.H{"id": id, "isActive": false})
}
