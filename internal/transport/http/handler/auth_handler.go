package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartfarm-api/internal/core/auth"
	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/repo"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/response"
	"smartfarm-api/pkg/utils"
)

type AuthHandler struct {
	users     domain.UserRepository
	jwter     *auth.JWTer
	log       *zap.Logger
	uploadDir string
}

func NewAuthHandler(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger, uploadDir string) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter, log: log, uploadDir: uploadDir}
}

func (h *AuthHandler) Mount(public, private *gin.RouterGroup) {
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
	private.GET("/profile", h.GetProfile)
	private.PUT("/profile", h.UpdateProfile)
	private.POST("/profile/picture", h.UploadPicture)
}

type farmDetailsIn struct {
	Location  string   `json:"location"`
	Size      float64  `json:"size"`
	CropTypes []string `json:"cropTypes"`
	SoilType  string   `json:"soilType"`
}

func (f *farmDetailsIn) toDomain() domain.FarmDetails {
	return domain.FarmDetails{
		Location:  f.Location,
		Size:      f.Size,
		CropTypes: f.CropTypes,
		SoilType:  f.SoilType,
	}
}

type profileOut struct {
	ID             string             `json:"_id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Role           string             `json:"role"`
	FarmDetails    domain.FarmDetails `json:"farmDetails"`
	ProfilePicture string             `json:"profilePicture"`
	Token          string             `json:"token,omitempty"`
}

func profile(u *domain.User) profileOut {
	return profileOut{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		FarmDetails:    u.FarmDetails,
		ProfilePicture: u.ProfilePicture,
	}
}

func (h *AuthHandler) profileWithToken(u *domain.User) (profileOut, error) {
	tok, err := h.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return profileOut{}, apperr.Internal("failed to issue token", err)
	}
	out := profile(u)
	out.Token = tok
	return out, nil
}

type registerIn struct {
	Name        string         `json:"name" binding:"required,max=64"`
	Email       string         `json:"email" binding:"required,email"`
	Password    string         `json:"password" binding:"required,min=6"`
	FarmDetails *farmDetailsIn `json:"farmDetails"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("Invalid user data"))
		return
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: utils.HashPassword(in.Password),
		Role:         domain.RoleFarmer,
		IsActive:     true,
	}
	if in.FarmDetails != nil {
		u.FarmDetails = in.FarmDetails.toDomain()
	}

	if err := h.users.Create(u); err != nil {
		if err == repo.ErrEmailTaken {
			response.Fail(c, apperr.Conflict("User already exists"))
			return
		}
		response.Fail(c, apperr.Internal("failed to register user", err))
		return
	}

	out, err := h.profileWithToken(u)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, out)
}

type loginIn struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login
// 未知邮箱和密码错误返回同一个 401，外部不可区分
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("Email and password are required"))
		return
	}

	u, err := h.users.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		response.Fail(c, apperr.Internal("failed to load user", err))
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		response.Fail(c, apperr.Unauthorized("Invalid email or password"))
		return
	}
	if !u.IsActive {
		response.Fail(c, apperr.Forbidden("Account has been deactivated"))
		return
	}

	out, err := h.profileWithToken(u)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// GetProfile GET /api/auth/profile
// 与注册 / 登录同一种档案形状（_id 键），不带 token，密码散列永不外显
func (h *AuthHandler) GetProfile(c *gin.Context) {
	u, err := currentUser(c, h.users)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, profile(u))
}

type updateProfileIn struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Password    string         `json:"password"`
	FarmDetails *farmDetailsIn `json:"farmDetails"`
}

// UpdateProfile PUT /api/auth/profile
// 只覆盖提供的字段；带新密码时重新散列；返回新签发的 token
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	u, err := currentUser(c, h.users)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var in updateProfileIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("Invalid profile data"))
		return
	}

	if in.Name != "" {
		u.Name = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.FarmDetails != nil {
		u.FarmDetails = in.FarmDetails.toDomain()
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			response.Fail(c, apperr.BadRequest("Password must be at least 6 characters long"))
			return
		}
		u.PasswordHash = utils.HashPassword(in.Password)
	}

	if err := h.users.Update(u); err != nil {
		if err == repo.ErrEmailTaken {
			response.Fail(c, apperr.Conflict("Email already in use"))
			return
		}
		response.Fail(c, apperr.Internal("failed to update profile", err))
		return
	}

	out, err := h.profileWithToken(u)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// UploadPicture POST /api/auth/profile/picture（multipart，字段名 picture）
func (h *AuthHandler) UploadPicture(c *gin.Context) {
	u, err := currentUser(c, h.users)
	if err != nil {
		response.Fail(c, err)
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		response.Fail(c, apperr.BadRequest("picture file is required"))
		return
	}

	name := utils.NewID() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		response.Fail(c, apperr.Internal("failed to store picture", err))
		return
	}

	u.ProfilePicture = "/uploads/" + name
	if err := h.users.Update(u); err != nil {
		response.Fail(c, apperr.Internal("failed to update profile", err))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"profilePicture": u.ProfilePicture})
}
