package handler

import (
	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/feature/soil"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/response"
)

// SoilHandler 土壤读数 → 灌溉/施肥建议。落历史由前端另行调用
// POST /api/auth/profile/analysis，与原有流程保持一致。
type SoilHandler struct{}

func NewSoilHandler() *SoilHandler { return &SoilHandler{} }

func (h *SoilHandler) Mount(private *gin.RouterGroup) {
	private.POST("/analyze", h.Analyze)
}

// Analyze POST /api/soil/analyze
func (h *SoilHandler) Analyze(c *gin.Context) {
	var in soil.Reading
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("invalid soil readings"))
		return
	}
	response.Data(c, 200, soil.Evaluate(in))
}
