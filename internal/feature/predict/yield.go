package predict

import "strings"

type YieldInput struct {
	CropType           string
	SoilType           string
	IrrigationLevel    string
	FertilizationLevel string
	Season             string // 可选
	FieldSize          float64
}

type YieldResult struct {
	Crop            string
	PerAcre         float64
	Total           float64
	Unit            string
	FieldSize       float64
	Confidence      float64
	Insights        []string
	Recommendations []string
}

// PredictYield 因子表连乘 + 随机扰动，结果保留两位小数。
// perAcre = base × soil × irrigation × fertilization × season × U[0.9,1.1]
func (s *Service) PredictYield(in YieldInput) YieldResult {
	crop := strings.ToLower(in.CropType)
	soil := strings.ToLower(in.SoilType)
	irrigation := strings.ToLower(in.IrrigationLevel)
	fertilization := strings.ToLower(in.FertilizationLevel)

	base := factor(s.tables.BaseYields, crop, defaultBaseYield)
	soilMod := factor(s.tables.SoilFactors, soil, 1.0)
	irrigationMod := factor(s.tables.IrrigationFactors, irrigation, 1.0)
	fertilizationMod := factor(s.tables.FertilizationFactors, fertilization, 1.0)
	seasonMod := 1.0
	if in.Season != "" {
		seasonMod = factor(s.tables.SeasonFactors, strings.ToLower(in.Season), 1.0)
	}
	randomMod := 0.9 + s.random()*0.2

	perAcre := round2(base * soilMod * irrigationMod * fertilizationMod * seasonMod * randomMod)

	unit := defaultYieldUnit
	if u, ok := s.tables.YieldUnits[crop]; ok {
		unit = u
	}

	return YieldResult{
		Crop:            in.CropType,
		PerAcre:         perAcre,
		Total:           round2(perAcre * in.FieldSize),
		Unit:            unit,
		FieldSize:       in.FieldSize,
		Confidence:      round2(0.85 + s.random()*0.1),
		Insights:        s.yieldInsights(in, perAcre),
		Recommendations: s.yieldRecommendations(in),
	}
}
