package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/feature/predict"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/middleware"
	"smartfarm-api/internal/transport/http/response"
	"smartfarm-api/pkg/utils"
)

type PredictHandler struct {
	svc   *predict.Service
	users domain.UserRepository
	log   *zap.Logger
}

func NewPredictHandler(svc *predict.Service, users domain.UserRepository, log *zap.Logger) *PredictHandler {
	return &PredictHandler{svc: svc, users: users, log: log}
}

func (h *PredictHandler) Mount(private *gin.RouterGroup) {
	private.POST("/predict-yield", h.PredictYield)
	private.POST("/predict-market-prices", h.PredictMarketPrices)
	private.GET("/user-predictions", h.UserPredictions)
}

type predictYieldIn struct {
	CropType           string  `json:"cropType"`
	SoilType           string  `json:"soilType"`
	IrrigationLevel    string  `json:"irrigationLevel"`
	FertilizationLevel string  `json:"fertilizationLevel"`
	Season             string  `json:"season"`
	PlantingDate       string  `json:"plantingDate"`
	FieldSize          float64 `json:"fieldSize"`
}

// PredictYield POST /api/predictive-analysis/predict-yield
func (h *PredictHandler) PredictYield(c *gin.Context) {
	var in predictYieldIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("Missing required parameters"))
		return
	}
	if in.CropType == "" || in.SoilType == "" || in.IrrigationLevel == "" ||
		in.FertilizationLevel == "" || in.FieldSize <= 0 {
		response.Fail(c, apperr.BadRequest("Missing required parameters"))
		return
	}

	res := h.svc.PredictYield(predict.YieldInput{
		CropType:           in.CropType,
		SoilType:           in.SoilType,
		IrrigationLevel:    in.IrrigationLevel,
		FertilizationLevel: in.FertilizationLevel,
		Season:             in.Season,
		FieldSize:          in.FieldSize,
	})

	// 历史落库尽力而为：失败只记日志，不影响预测响应
	uid := c.GetString(middleware.KeyUserID)
	if uid != "" {
		rec := &domain.YieldPrediction{
			ID:             utils.NewID(),
			Crop:           in.CropType,
			PredictedYield: res.PerAcre,
			Date:           time.Now(),
		}
		if err := h.users.AppendYieldPrediction(uid, rec); err != nil {
			h.log.Error("failed to save prediction to user history", zap.Error(err), zap.String("user", uid))
		}
	}

	response.Data(c, 200, gin.H{
		"crop": res.Crop,
		"predictedYield": gin.H{
			"perAcre": res.PerAcre,
			"total":   res.Total,
			"unit":    res.Unit,
		},
		"fieldSize": gin.H{
			"value": res.FieldSize,
			"unit":  "acres",
		},
		"confidence":      res.Confidence,
		"insights":        res.Insights,
		"recommendations": res.Recommendations,
	})
}

type predictMarketIn struct {
	CropType    string `json:"cropType"`
	HarvestDate string `json:"harvestDate"`
	Quality     string `json:"quality"`
	Organic     bool   `json:"organic"`
}

// PredictMarketPrices POST /api/predictive-analysis/predict-market-prices
// 市场预测不落历史
func (h *PredictHandler) PredictMarketPrices(c *gin.Context) {
	var in predictMarketIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest("Crop type is required"))
		return
	}
	if in.CropType == "" {
		response.Fail(c, apperr.BadRequest("Crop type is required"))
		return
	}

	res := h.svc.PredictMarketPrices(predict.MarketInput{
		CropType: in.CropType,
		Quality:  in.Quality,
		Organic:  in.Organic,
	})

	response.Data(c, 200, gin.H{
		"crop":            res.Crop,
		"currentPrice":    res.CurrentPrice,
		"forecastedPrice": res.ForecastedPrice,
		"priceRange":      res.PriceRange,
		"priceTrend":      res.Trend,
		"unit":            res.Unit,
		"marketInsights":  res.Insights,
		"confidenceLevel": res.Confidence,
	})
}

// UserPredictions GET /api/predictive-analysis/user-predictions
func (h *PredictHandler) UserPredictions(c *gin.Context) {
	u, err := currentUser(c, h.users)
	if err != nil {
		response.Fail(c, err)
		return
	}
	list, err := h.users.ListYieldPredictions(u.ID)
	if err != nil {
		response.Fail(c, apperr.Internal("failed to fetch user predictions", err))
		return
	}
	response.Data(c, 200, list)
}
