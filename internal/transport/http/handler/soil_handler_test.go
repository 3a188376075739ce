package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoilAnalyze(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.seedUser(t, "alice@farm.test", "farmer")

	// 干旱 + 缺氮：两项建议都触发
	w := env.do(t, http.MethodPost, "/api/soil/analyze", tok, map[string]any{
		"moisture":    10,
		"temperature": 28,
		"rainfall":    1,
		"n_no3":       10,
		"p":           25,
		"k":           150,
	})
	requireStatus(t, w, http.StatusOK)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, true, data["irrigation_needed"])
	assert.Equal(t, true, data["fertilization_needed"])
	assert.Equal(t, "Soil moisture is low for current conditions. Irrigation is recommended.", data["irrigation_note"])

	// 一切正常
	w = env.do(t, http.MethodPost, "/api/soil/analyze", tok, map[string]any{
		"moisture":    25,
		"temperature": 24,
		"rainfall":    5,
		"n_no3":       35,
		"p":           25,
		"k":           150,
	})
	requireStatus(t, w, http.StatusOK)
	data = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, false, data["irrigation_needed"])
	assert.Equal(t, false, data["fertilization_needed"])
}

func TestSoilAnalyze_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/soil/analyze", "", map[string]any{"moisture": 10})
	requireStatus(t, w, http.StatusUnauthorized)
}
