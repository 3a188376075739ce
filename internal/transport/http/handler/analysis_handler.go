package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/middleware"
	"smartfarm-api/internal/transport/http/response"
	"smartfarm-api/pkg/utils"
)

// AnalysisHandler 土壤分析历史：追加 / 布尔位修补 / 列表，列表只对本人可见
type AnalysisHandler struct {
	users domain.UserRepository
}

func NewAnalysisHandler(users domain.UserRepository) *AnalysisHandler {
	return &AnalysisHandler{users: users}
}

func (h *AnalysisHandler) Mount(private *gin.RouterGroup) {
	private.POST("/profile/analysis", h.Add)
	private.PUT("/profile/analysis/:id", h.Update)
	private.GET("/profile/analysis", h.List)
}

type addAnalysisIn struct {
	IrrigationNeeded    *bool `json:"irrigation_needed" binding:"required"`
	FertilizationNeeded *bool `json:"fertilization_needed" binding:"required"`
}

// Add POST /api/auth/profile/analysis
// 同一天允许多条，不去重；返回追加后的完整列表
func (h *AnalysisHandler) Add(c *gin.Context) {
	var in addAnalysisIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("irrigation_needed and fertilization_needed are required"))
		return
	}

	uid := c.GetString(middleware.KeyUserID)
	rec := &domain.AnalysisRecord{
		ID:                  utils.NewID(),
		Date:                time.Now(),
		IrrigationNeeded:    *in.IrrigationNeeded,
		FertilizationNeeded: *in.FertilizationNeeded,
	}
	if err := h.users.AppendAnalysis(uid, rec); err != nil {
		response.Fail(c, apperr.Internal("failed to add analysis", err))
		return
	}

	list, err := h.users.ListAnalysis(uid)
	if err != nil {
		response.Fail(c, apperr.Internal("failed to load analysis", err))
		return
	}
	response.Created(c, gin.H{"message": "Analysis added successfully", "analysis": list})
}

type updateAnalysisIn struct {
	// 指针语义：nil 不改，显式 false 照样落库（“标记已处理”依赖这点）
	IrrigationNeeded    *bool `json:"irrigation_needed"`
	FertilizationNeeded *bool `json:"fertilization_needed"`
}

// Update PUT /api/auth/profile/analysis/:id
func (h *AnalysisHandler) Update(c *gin.Context) {
	var in updateAnalysisIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("invalid analysis payload"))
		return
	}

	uid := c.GetString(middleware.KeyUserID)
	rec, err := h.users.PatchAnalysis(uid, c.Param("id"), domain.AnalysisPatch{
		IrrigationNeeded:    in.IrrigationNeeded,
		FertilizationNeeded: in.FertilizationNeeded,
	})
	if err != nil {
		response.Fail(c, apperr.Internal("failed to update analysis", err))
		return
	}
	if rec == nil {
		response.Fail(c, apperr.NotFound("Analysis not found"))
		return
	}
	response.OK(c, gin.H{"message": "Analysis updated successfully", "analysis": rec})
}

// List GET /api/auth/profile/analysis
func (h *AnalysisHandler) List(c *gin.Context) {
	list, err := h.users.ListAnalysis(c.GetString(middleware.KeyUserID))
	if err != nil {
		response.Fail(c, apperr.Internal("failed to load analysis", err))
		return
	}
	response.OK(c, list)
}
