package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 基准读数：一切正常，无需灌溉 / 施肥
func healthyReading() Reading {
	return Reading{
		Sand: 40, Clay: 30, Silt: 30,
		PH: 6.5, EC: 1.2, OM: 3.0,
		Nitrogen: 35, Phosphorus: 25, Potassium: 150,
		Moisture: 25, Temperature: 24, Rainfall: 5,
	}
}

func TestEvaluate_Healthy(t *testing.T) {
	got := Evaluate(healthyReading())

	assert.False(t, got.IrrigationNeeded)
	assert.False(t, got.FertilizationNeeded)
	assert.Equal(t, "Soil moisture is adequate. No irrigation needed at this time.", got.IrrigationNote)
	assert.Equal(t, "Nutrient levels are within target ranges. No fertilization needed.", got.FertilizationNote)
}

func TestEvaluate_IrrigationTriggers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Reading)
	}{
		{"low moisture", func(r *Reading) { r.Moisture = 10 }},
		{"high temperature", func(r *Reading) { r.Temperature = 35 }},
		{"low rainfall", func(r *Reading) { r.Rainfall = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := healthyReading()
			tt.mutate(&r)
			got := Evaluate(r)
			assert.True(t, got.IrrigationNeeded)
			assert.False(t, got.FertilizationNeeded)
			assert.Equal(t, "Soil moisture is low for current conditions. Irrigation is recommended.", got.IrrigationNote)
		})
	}
}

func TestEvaluate_FertilizationTriggers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Reading)
	}{
		{"low nitrogen", func(r *Reading) { r.Nitrogen = 10 }},
		{"low phosphorus", func(r *Reading) { r.Phosphorus = 5 }},
		{"low potassium", func(r *Reading) { r.Potassium = 50 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := healthyReading()
			tt.mutate(&r)
			got := Evaluate(r)
			assert.False(t, got.IrrigationNeeded)
			assert.True(t, got.FertilizationNeeded)
			assert.Equal(t, "Nutrient levels are below target ranges. Fertilization is recommended.", got.FertilizationNote)
		})
	}
}

func TestEvaluate_Boundaries(t *testing.T) {
	// 阈值本身不触发（严格比较）
	r := healthyReading()
	r.Moisture = 15
	r.Temperature = 32
	r.Rainfall = 2
	r.Nitrogen = 20
	r.Phosphorus = 15
	r.Potassium = 80

	got := Evaluate(r)
	assert.False(t, got.IrrigationNeeded)
	assert.False(t, got.FertilizationNeeded)
}
