// Package advisory 保留灌溉建议与叶片分析两个占位接口的固定应答，
// 等待真正的模型服务接入后替换。
package advisory

type IrrigationAdvice struct {
	IrrigationAmount float64  `json:"irrigationAmount"`
	Schedule         string   `json:"schedule"`
	WaterSavingTips  []string `json:"waterSavingTips"`
}

type LeafAnalysis struct {
	Disease         string  `json:"disease"`
	Confidence      float64 `json:"confidence"`
	Recommendations string  `json:"recommendations"`
}

func RecommendIrrigation() IrrigationAdvice {
	return IrrigationAdvice{
		IrrigationAmount: 25.5,
		Schedule:         "Apply water in the early morning for best results",
		WaterSavingTips: []string{
			"Use drip irrigation when possible",
			"Mulch around plants to reduce evaporation",
		},
	}
}

func AnalyzeLeaf() LeafAnalysis {
	return LeafAnalysis{
		Disease:         "Healthy",
		Confidence:      0.95,
		Recommendations: "No treatment needed",
	}
}
