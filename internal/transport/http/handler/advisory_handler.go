package handler

import (
	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/feature/advisory"
	"smartfarm-api/internal/transport/http/response"
)

// AdvisoryHandler 两个占位接口，等模型服务接入后替换
type AdvisoryHandler struct{}

func NewAdvisoryHandler() *AdvisoryHandler { return &AdvisoryHandler{} }

func (h *AdvisoryHandler) MountIrrigation(private *gin.RouterGroup) {
	private.POST("/recommend", func(c *gin.Context) {
		response.JSON(c, 200, gin.H{
			"message": "Irrigation recommendation placeholder endpoint",
			"status":  "success",
			"data":    advisory.RecommendIrrigation(),
		})
	})
}

func (h *AdvisoryHandler) MountLeafAnalysis(private *gin.RouterGroup) {
	private.POST("/analyze", func(c *gin.Context) {
		response.JSON(c, 200, gin.H{
			"message": "Leaf analysis placeholder endpoint",
			"status":  "success",
			"data":    advisory.AnalyzeLeaf(),
		})
	})
}
