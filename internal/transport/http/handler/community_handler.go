package handler

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/middleware"
	"smartfarm-api/internal/transport/http/response"
	"smartfarm-api/pkg/utils"
)

type CommunityHandler struct {
	posts domain.PostRepository
	users domain.UserRepository
}

func NewCommunityHandler(posts domain.PostRepository, users domain.UserRepository) *CommunityHandler {
	return &CommunityHandler{posts: posts, users: users}
}

func (h *CommunityHandler) Mount(public, private *gin.RouterGroup) {
	public.GET("/posts", h.List)
	public.GET("/posts/:id", h.Get)
	private.POST("/posts", h.Create)
	private.PUT("/posts/:id", h.Update)
	private.DELETE("/posts/:id", h.Delete)
	private.POST("/posts/:id/comments", h.AddComment)
	private.POST("/posts/:id/like", h.Like)
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}

// List GET /api/community/posts?category=&search=&page=&limit=
func (h *CommunityHandler) List(c *gin.Context) {
	f := domain.PostFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     atoiDefault(c.Query("page"), 1),
		Limit:    atoiDefault(c.Query("limit"), 10),
	}
	posts, total, err := h.posts.List(f)
	if err != nil {
		response.Fail(c, apperr.Internal("failed to fetch posts", err))
		return
	}
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	response.Data(c, 200, gin.H{
		"posts": posts,
		"pagination": gin.H{
			"total": total,
			"page":  f.Page,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// Get GET /api/community/posts/:id
func (h *CommunityHandler) Get(c *gin.Context) {
	p, err := h.posts.FindByID(c.Param("id"))
	if err != nil {
		response.Fail(c, apperr.Internal("failed to fetch post", err))
		return
	}
	if p == nil {
		response.Fail(c, apperr.NotFound("Post not found"))
		return
	}
	response.Data(c, 200, p)
}

type createPostIn struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Category string            `json:"category"`
	Links    []domain.PostLink `json:"links"`
	Tags     []string          `json:"tags"`
}

// Create POST /api/community/posts
// 作者信息是建帖时的档案快照，之后改档案不回写（快照语义，非 bug）
func (h *CommunityHandler) Create(c *gin.Context) {
	var in createPostIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("Please provide title, content and category"))
		return
	}
	if in.Title == "" || in.Content == "" || in.Category == "" {
		response.Fail(c, apperr.BadRequest("Please provide title, content and category"))
		return
	}
	if !domain.ValidCategory(in.Category) {
		response.Fail(c, apperr.BadRequest("Invalid category"))
		return
	}

	u, err := currentUser(c, h.users)
	if err != nil {
		response.Fail(c, err)
		return
	}

	farm := u.FarmDetails.Location
	if farm == "" {
		farm = "Unknown Farm"
	}
	location := u.FarmDetails.Location
	if location == "" {
		location = "Unknown"
	}

	p := &domain.CommunityPost{
		ID: utils.NewID(),
		Author: domain.PostAuthor{
			UserID:   u.ID,
			Name:     u.Name,
			Farm:     farm,
			Location: location,
		},
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Links:    in.Links,
		Tags:     in.Tags,
	}
	if p.Links == nil {
		p.Links = []domain.PostLink{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := h.posts.Create(p); err != nil {
		response.Fail(c, apperr.Internal("failed to create post", err))
		return
	}
	response.JSON(c, 201, gin.H{"success": true, "data": p, "message": "Post created successfully"})
}

type updatePostIn struct {
	Title    *string            `json:"title"`
	Content  *string            `json:"content"`
	Category *string            `json:"category"`
	Links    *[]domain.PostLink `json:"links"`
	Tags     *[]string          `json:"tags"`
}

// Update PUT /api/community/posts/:id（仅作者）
func (h *CommunityHandler) Update(c *gin.Context) {
	p, err := h.posts.FindByID(c.Param("id"))
	if err != nil {
		response.Fail(c, apperr.Internal("failed to fetch post", err))
		return
	}
	if p == nil {
		response.Fail(c, apperr.NotFound("Post not found"))
		return
	}
	if p.Author.UserID != c.GetString(middleware.KeyUserID) {
		response.Fail(c, apperr.Forbidden("You are not authorized to update this post"))
		return
	}

	var in updatePostIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("invalid post payload"))
		return
	}
	if in.Title != nil && *in.Title != "" {
		p.Title = *in.Title
	}
	if in.Content != nil && *in.Content != "" {
		p.Content = *in.Content
	}
	if in.Category != nil && *in.Category != "" {
		if !domain.ValidCategory(*in.Category) {
			response.Fail(c, apperr.BadRequest("Invalid category"))
			return
		}
		p.Category = *in.Category
	}
	if in.Links != nil {
		p.Links = *in.Links
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	p.UpdatedAt = time.Now()

	if err := h.posts.Update(p); err != nil {
		response.Fail(c, apperr.Internal("failed to update post", err))
		return
	}
	response.JSON(c, 200, gin.H{"success": true, "data": p, "message": "Post updated successfully"})
}

// Delete DELETE /api/community/posts/:id（作者或管理员）
func (h *CommunityHandler) Delete(c *gin.Context) {
	p, err := h.posts.FindByID(c.Param("id"))
	if err != nil {
		response.Fail(c, apperr.Internal("failed to fetch post", err))
		return
	}
	if p == nil {
		response.Fail(c, apperr.NotFound("Post not found"))
		return
	}
	uid := c.GetString(middleware.KeyUserID)
	role := c.GetString(middleware.KeyRole)
	if p.Author.UserID != uid && role != domain.RoleAdmin {
		response.Fail(c, apperr.Forbidden("You are not authorized to delete this post"))
		return
	}
	if err := h.posts.Delete(p.ID); err != nil {
		response.Fail(c, apperr.Internal("failed to delete post", err))
		return
	}
	response.JSON(c, 200, gin.H{"success": true, "message": "Post deleted successfully"})
}

type addCommentIn struct {
	Text string `json:"text"`
}

// AddComment POST /api/community/posts/:id/comments
func (h *CommunityHandler) AddComment(c *gin.Context) {
	var in addCommentIn
	if err := c.ShouldBindJSON(&in); err != nil || in.Text == "" {
		response.Fail(c, apperr.BadRequest("Comment text is required"))
		return
	}

	p, err := h.posts.FindByID(c.Param("id"))
	if err != nil {
		response.Fail(c, apperr.Internal("failed to fetch post", err))
		return
	}
	if p == nil {
		response.Fail(c, apperr.NotFound("Post not found"))
		return
	}

	u, err := currentUser(c, h.users)
	if err != nil {
		response.Fail(c, err)
		return
	}

	comment := &domain.Comment{
		ID:        utils.NewID(),
		PostID:    p.ID,
		UserID:    u.ID,
		UserName:  u.Name,
		Text:      in.Text,
		CreatedAt: time.Now(),
	}
	if err := h.posts.AddComment(comment); err != nil {
		response.Fail(c, apperr.Internal("failed to add comment", err))
		return
	}
	response.JSON(c, 200, gin.H{"success": true, "data": comment, "message": "Comment added successfully"})
}

// Like POST /api/community/posts/:id/like
// 无条件 +1，不去重；返回最新计数
func (h *CommunityHandler) Like(c *gin.Context) {
	likes, err := h.posts.Like(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, apperr.NotFound("Post not found"))
			return
		}
		response.Fail(c, apperr.Internal("failed to like post", err))
		return
	}
	response.JSON(c, 200, gin.H{"success": true, "data": gin.H{"likes": likes}, "message": "Post liked successfully"})
}
