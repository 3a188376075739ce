package soil

// Reading 土壤与环境读数（与前端表单字段一致）
type Reading struct {
	Sand        float64 `json:"sand"`
	Clay        float64 `json:"clay"`
	Silt        float64 `json:"silt"`
	PH          float64 `json:"ph"`
	EC          float64 `json:"ec"`
	OM          float64 `json:"om"`
	Nitrogen    float64 `json:"n_no3"`
	Phosphorus  float64 `json:"p"`
	Potassium   float64 `json:"k"`
	Moisture    float64 `json:"moisture"`
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
}

type Result struct {
	IrrigationNeeded    bool   `json:"irrigation_needed"`
	FertilizationNeeded bool   `json:"fertilization_needed"`
	IrrigationNote      string `json:"irrigation_note"`
	FertilizationNote   string `json:"fertilization_note"`
}

// 阈值与推理服务的规则模型一致
const (
	minMoisture    = 15.0
	maxTemperature = 32.0
	minRainfall    = 2.0
	minNitrogen    = 20.0
	minPhosphorus  = 15.0
	minPotassium   = 80.0
)

// Evaluate 规则判定：任一触发条件命中即推荐相应措施。
func Evaluate(r Reading) Result {
	res := Result{
		IrrigationNeeded:    r.Moisture < minMoisture || r.Temperature > maxTemperature || r.Rainfall < minRainfall,
		FertilizationNeeded: r.Nitrogen < minNitrogen || r.Phosphorus < minPhosphorus || r.Potassium < minPotassium,
	}
	if res.IrrigationNeeded {
		res.IrrigationNote = "Soil moisture is low for current conditions. Irrigation is recommended."
	} else {
		res.IrrigationNote = "Soil moisture is adequate. No irrigation needed at this time."
	}
	if res.FertilizationNeeded {
		res.FertilizationNote = "Nutrient levels are below target ranges. Fertilization is recommended."
	} else {
		res.FertilizationNote = "Nutrient levels are within target ranges. No fertilization needed."
	}
	return res
}
