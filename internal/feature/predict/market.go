package predict

import "strings"

type MarketInput struct {
	CropType string
	Quality  string // 默认 "standard"
	Organic  bool
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type MarketResult struct {
	Crop            string
	CurrentPrice    float64
	ForecastedPrice float64
	PriceRange      PriceRange
	Trend           string // "increasing" / "decreasing"
	Unit            string
	Insights        []string
	Confidence      float64
}

// PredictMarketPrices 当前价 = 基准价 × 品质系数（有机再 ×1.4）；
// 趋势取 U[-10%,+15%]，预测价按趋势外推，区间 ×[0.85,1.15]。
func (s *Service) PredictMarketPrices(in MarketInput) MarketResult {
	crop := strings.ToLower(in.CropType)
	quality := strings.ToLower(in.Quality)
	if quality == "" {
		quality = "standard"
	}

	base := BasePrice{Price: defaultPriceValue, Unit: defaultPriceUnit}
	if p, ok := s.tables.BasePrices[crop]; ok {
		base = p
	}
	mult := factor(s.tables.QualityMultipliers, quality, 1.0)
	if in.Organic {
		mult *= organicMultiplier
	}

	current := round2(base.Price * mult)

	trendPct := -10 + s.random()*25
	trend := "decreasing"
	if trendPct >= 0 {
		trend = "increasing"
	}
	forecasted := round2(current * (1 + trendPct/100))

	return MarketResult{
		Crop:            in.CropType,
		CurrentPrice:    current,
		ForecastedPrice: forecasted,
		PriceRange:      PriceRange{Min: round2(forecasted * 0.85), Max: round2(forecasted * 1.15)},
		Trend:           trend,
		Unit:            base.Unit,
		Insights:        s.marketInsights(in, trend),
		Confidence:      round2(0.7 + s.random()*0.2),
	}
}
