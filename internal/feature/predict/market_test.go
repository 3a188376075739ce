package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictMarketPrices_Standard(t *testing.T) {
	// rand=0.5 → 趋势 +2.5%、置信度 0.8
	s := NewService(DefaultTables(), seqRand(0.5))

	got := s.PredictMarketPrices(MarketInput{CropType: "corn"})

	require.InDelta(t, 5.75, got.CurrentPrice, 1e-9)
	assert.Equal(t, "increasing", got.Trend)
	assert.InDelta(t, 5.89, got.ForecastedPrice, 1e-9)
	assert.InDelta(t, 0.8, got.Confidence, 1e-9)
	assert.Equal(t, "bushel", got.Unit)
	assert.InDelta(t, got.ForecastedPrice*0.85, got.PriceRange.Min, 0.01)
	assert.InDelta(t, got.ForecastedPrice*1.15, got.PriceRange.Max, 0.01)

	assert.Contains(t, got.Insights, "corn prices are trending upward. Consider delaying sales if storage is available.")
	assert.Contains(t, got.Insights, "Ethanol demand remains a key price driver for corn markets.")
}

func TestPredictMarketPrices_DecreasingTrend(t *testing.T) {
	// rand=0 → 趋势 -10%
	s := NewService(DefaultTables(), seqRand(0))

	got := s.PredictMarketPrices(MarketInput{CropType: "wheat", Quality: "standard"})

	assert.Equal(t, "decreasing", got.Trend)
	assert.Less(t, got.ForecastedPrice, got.CurrentPrice)
	assert.Contains(t, got.Insights, "wheat prices are trending downward. Consider securing forward contracts now.")
	assert.Contains(t, got.Insights, "Global wheat supplies are affected by ongoing conflicts in major production regions.")
}

func TestPredictMarketPrices_QualityAndOrganic(t *testing.T) {
	s := NewService(DefaultTables(), seqRand(0.5))

	std := s.PredictMarketPrices(MarketInput{CropType: "coffee"})
	premium := s.PredictMarketPrices(MarketInput{CropType: "coffee", Quality: "premium"})
	organic := s.PredictMarketPrices(MarketInput{CropType: "coffee", Quality: "premium", Organic: true})

	assert.InDelta(t, std.CurrentPrice*1.35, premium.CurrentPrice, 0.01)
	assert.InDelta(t, premium.CurrentPrice*1.4, organic.CurrentPrice, 0.02)
	assert.Greater(t, organic.CurrentPrice, premium.CurrentPrice)

	assert.Contains(t, organic.Insights, "Organic coffee commands a significant premium in current markets.")
	assert.Contains(t, organic.Insights, "Demand for organic products continues to grow annually.")
	assert.Contains(t, organic.Insights, "Specialty coffee market continues to expand, offering premium opportunities.")
}

func TestPredictMarketPrices_UnknownCropDefaults(t *testing.T) {
	s := NewService(DefaultTables(), seqRand(0.5))

	got := s.PredictMarketPrices(MarketInput{CropType: "dragonfruit"})

	require.InDelta(t, 10.0, got.CurrentPrice, 1e-9)
	assert.Equal(t, "unit", got.Unit)
}

func TestPredictMarketPrices_ConfidenceBounds(t *testing.T) {
	s := NewService(DefaultTables(), nil)

	for i := 0; i < 50; i++ {
		got := s.PredictMarketPrices(MarketInput{CropType: "rice"})
		assert.GreaterOrEqual(t, got.Confidence, 0.7)
		assert.LessOrEqual(t, got.Confidence, 0.9)
		assert.LessOrEqual(t, got.PriceRange.Min, got.ForecastedPrice)
		assert.GreaterOrEqual(t, got.PriceRange.Max, got.ForecastedPrice)
	}
}
