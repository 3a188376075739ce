package predict

import (
	"fmt"
	"strings"
)

// 洞察 / 建议走规则表：谓词命中则追加消息，顺序即输出顺序。

type yieldRule struct {
	when func(in YieldInput, perAcre float64) bool
	msg  string
}

func cropIs(name string) func(in YieldInput, _ float64) bool {
	return func(in YieldInput, _ float64) bool { return strings.EqualFold(in.CropType, name) }
}
func soilIs(name string) func(in YieldInput, _ float64) bool {
	return func(in YieldInput, _ float64) bool { return strings.EqualFold(in.SoilType, name) }
}
func irrigationIs(level string) func(in YieldInput, _ float64) bool {
	return func(in YieldInput, _ float64) bool { return strings.EqualFold(in.IrrigationLevel, level) }
}
func fertilizationIs(level string) func(in YieldInput, _ float64) bool {
	return func(in YieldInput, _ float64) bool { return strings.EqualFold(in.FertilizationLevel, level) }
}

var insightRules = []yieldRule{
	{func(in YieldInput, perAcre float64) bool {
		return strings.EqualFold(in.CropType, "corn") && perAcre > 9
	}, "Your predicted corn yield is above the national average of 8.9 bushels/acre"},
	{func(in YieldInput, perAcre float64) bool {
		return strings.EqualFold(in.CropType, "wheat") && perAcre > 3.5
	}, "Your predicted wheat yield is above the national average of 3.4 bushels/acre"},
	{soilIs("loam"), "Loam soil provides excellent growing conditions for most crops"},
	{soilIs("clay"), "Clay soil retains water well but may need additional aeration"},
	{soilIs("sandy"), "Sandy soil drains quickly and may require more frequent irrigation"},
	{irrigationIs("high"), "High irrigation levels provide optimal water but consider costs and sustainability"},
	{irrigationIs("low"), "Low irrigation may stress crops during dry periods"},
	{fertilizationIs("high"), "High fertilization can boost yields but watch for runoff and environmental impact"},
	{fertilizationIs("low"), "Consider increasing fertilization to improve yields"},
}

var recommendationRules = []yieldRule{
	{func(in YieldInput, _ float64) bool {
		return strings.EqualFold(in.IrrigationLevel, "low") && strings.EqualFold(in.SoilType, "sandy")
	}, "Increase irrigation frequency for sandy soil to prevent water stress"},
	{func(in YieldInput, _ float64) bool {
		return strings.EqualFold(in.IrrigationLevel, "high") && strings.EqualFold(in.SoilType, "clay")
	}, "Consider reducing irrigation to prevent waterlogging in clay soil"},
	{fertilizationIs("low"), "Consider soil testing to optimize fertilizer application"},
	{fertilizationIs("high"), "Monitor for nutrient runoff and consider split applications"},
	{cropIs("corn"), "Consider narrower row spacing to maximize yield potential"},
	{cropIs("wheat"), "Monitor for rust and fusarium head blight during humid conditions"},
	{cropIs("soybean"), "Consider inoculation to enhance nitrogen fixation"},
}

func (s *Service) yieldInsights(in YieldInput, perAcre float64) []string {
	out := make([]string, 0, 4)
	for _, r := range insightRules {
		if r.when(in, perAcre) {
			out = append(out, r.msg)
		}
	}
	return out
}

func (s *Service) yieldRecommendations(in YieldInput) []string {
	out := make([]string, 0, 4)
	for _, r := range recommendationRules {
		if r.when(in, 0) {
			out = append(out, r.msg)
		}
	}
	return out
}

type marketRule struct {
	when func(in MarketInput, trend string) bool
	msg  func(in MarketInput) string
}

func fixed(msg string) func(MarketInput) string {
	return func(MarketInput) string { return msg }
}

var marketRules = []marketRule{
	{func(_ MarketInput, trend string) bool { return trend == "increasing" },
		func(in MarketInput) string {
			return fmt.Sprintf("%s prices are trending upward. Consider delaying sales if storage is available.", in.CropType)
		}},
	{func(_ MarketInput, trend string) bool { return trend == "decreasing" },
		func(in MarketInput) string {
			return fmt.Sprintf("%s prices are trending downward. Consider securing forward contracts now.", in.CropType)
		}},
	{func(in MarketInput, _ string) bool { return in.Organic },
		func(in MarketInput) string {
			return fmt.Sprintf("Organic %s commands a significant premium in current markets.", in.CropType)
		}},
	{func(in MarketInput, _ string) bool { return in.Organic },
		fixed("Demand for organic products continues to grow annually.")},
	{func(in MarketInput, _ string) bool { return strings.EqualFold(in.CropType, "corn") },
		fixed("Ethanol demand remains a key price driver for corn markets.")},
	{func(in MarketInput, _ string) bool { return strings.EqualFold(in.CropType, "wheat") },
		fixed("Global wheat supplies are affected by ongoing conflicts in major production regions.")},
	{func(in MarketInput, _ string) bool { return strings.EqualFold(in.CropType, "coffee") },
		fixed("Specialty coffee market continues to expand, offering premium opportunities.")},
}

func (s *Service) marketInsights(in MarketInput, trend string) []string {
	out := make([]string, 0, 4)
	for _, r := range marketRules {
		if r.when(in, trend) {
			out = append(out, r.msg(in))
		}
	}
	return out
}
