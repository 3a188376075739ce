package handler

import (
	"github.com/gin-gonic/gin"

	"smartfarm-api/internal/feature/weather"
	"smartfarm-api/internal/transport/http/apperr"
	"smartfarm-api/internal/transport/http/response"
)

type WeatherHandler struct {
	client *weather.Client
}

func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

func (h *WeatherHandler) Mount(private *gin.RouterGroup) {
	private.GET("/current", h.Current)
	private.GET("/forecast", h.Forecast)
}

// Current GET /api/weather/current?location=...
func (h *WeatherHandler) Current(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		response.Fail(c, apperr.BadRequest("location is required"))
		return
	}
	raw, err := h.client.Current(c.Request.Context(), location)
	if err != nil {
		response.Fail(c, apperr.Upstream("Failed to fetch weather data", err))
		return
	}
	c.Data(200, "application/json", raw)
}

// Forecast GET /api/weather/forecast?location=...&days=3
func (h *WeatherHandler) Forecast(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		response.Fail(c, apperr.BadRequest("location is required"))
		return
	}
	raw, err := h.client.Forecast(c.Request.Context(), location, atoiDefault(c.Query("days"), 3))
	if err != nil {
		response.Fail(c, apperr.Upstream("Failed to fetch weather data", err))
		return
	}
	c.Data(200, "application/json", raw)
}
