package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictYieldEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.seedUser(t, "alice@farm.test", "farmer")

	w := env.do(t, http.MethodPost, "/api/predictive-analysis/predict-yield", tok, map[string]any{
		"cropType":           "corn",
		"soilType":           "loam",
		"irrigationLevel":    "medium",
		"fertilizationLevel": "medium",
		"fieldSize":          10,
	})
	requireStatus(t, w, http.StatusOK)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "corn", data["crop"])

	// rand 固定 0.5：8.5 × 1.2 × 1.0 = 10.2
	py := data["predictedYield"].(map[string]any)
	assert.InDelta(t, 10.2, py["perAcre"].(float64), 1e-9)
	assert.InDelta(t, 102.0, py["total"].(float64), 1e-9)
	assert.Equal(t, "bushels/acre", py["unit"])

	fs := data["fieldSize"].(map[string]any)
	assert.InDelta(t, 10.0, fs["value"].(float64), 1e-9)
	assert.Equal(t, "acres", fs["unit"])

	assert.InDelta(t, 0.9, data["confidence"].(float64), 1e-9)
	assert.NotEmpty(t, data["insights"])
	assert.NotEmpty(t, data["recommendations"])
}

func TestPredictYield_MissingParameters(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.seedUser(t, "alice@farm.test", "farmer")

	tests := []struct {
		name string
		in   map[string]any
	}{
		{"no crop", map[string]any{"soilType": "loam", "irrigationLevel": "medium", "fertilizationLevel": "medium", "fieldSize": 10}},
		{"no soil", map[string]any{"cropType": "corn", "irrigationLevel": "medium", "fertilizationLevel": "medium", "fieldSize": 10}},
		{"zero field size", map[string]any{"cropType": "corn", "soilType": "loam", "irrigationLevel": "medium", "fertilizationLevel": "medium", "fieldSize": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/predictive-analysis/predict-yield", tok, tt.in)
			requireStatus(t, w, http.StatusBadRequest)
			assert.Equal(t, "Missing required parameters", decode(t, w)["message"])
		})
	}
}

func TestPredictYield_SavesUserHistory(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.seedUser(t, "alice@farm.test", "farmer")

	for _, crop := range []string{"corn", "wheat"} {
		w := env.do(t, http.MethodPost, "/api/predictive-analysis/predict-yield", tok, map[string]any{
			"cropType":           crop,
			"soilType":           "loam",
			"irrigationLevel":    "medium",
			"fertilizationLevel": "medium",
			"fieldSize":          5,
		})
		requireStatus(t, w, http.StatusOK)
	}

	w := env.do(t, http.MethodGet, "/api/predictive-analysis/user-predictions", tok, nil)
	requireStatus(t, w, http.StatusOK)

	list := decode(t, w)["data"].([]any)
	require.Len(t, list, 2)
	first := list[0].(map[string]any)
	assert.Equal(t, "corn", first["crop"])
	assert.NotEmpty(t, first["predictedYield"])
}

func TestPredictMarketPricesEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.seedUser(t, "alice@farm.test", "farmer")

	w := env.do(t, http.MethodPost, "/api/predictive-analysis/predict-market-prices", tok, map[string]any{
		"cropType": "corn",
		"quality":  "premium",
		"organic":  true,
	})
	requireStatus(t, w, http.StatusOK)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "corn", data["crop"])
	assert.Equal(t, "bushel", data["unit"])
	// rand 0.5 → +2.5%，增势
	assert.Equal(t, "increasing", data["priceTrend"])
	assert.Greater(t, data["forecastedPrice"].(float64), 0.0)
	pr := data["priceRange"].(map[string]any)
	assert.Less(t, pr["min"].(float64), pr["max"].(float64))
	assert.InDelta(t, 0.8, data["confidenceLevel"].(float64), 1e-9)
	assert.NotEmpty(t, data["marketInsights"])
}

func TestPredictMarketPrices_RequiresCropType(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.seedUser(t, "alice@farm.test", "farmer")

	w := env.do(t, http.MethodPost, "/api/predictive-analysis/predict-market-prices", tok, map[string]any{
		"quality": "standard",
	})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Crop type is required", decode(t, w)["message"])
}

func TestPredictEndpoints_RequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/predictive-analysis/predict-yield", "", map[string]any{
		"cropType": "corn",
	})
	requireStatus(t, w, http.StatusUnauthorized)

	w = env.do(t, http.MethodGet, "/api/predictive-analysis/user-predictions", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}
