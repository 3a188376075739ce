package predict

import "github.com/spf13/viper"

// BasePrice 每单位基准价
type BasePrice struct {
	Price float64 `mapstructure:"price" yaml:"price"`
	Unit  string  `mapstructure:"unit" yaml:"unit"`
}

// Tables 预测因子表。作为配置发布（可被 YAML 覆盖），不是散落的魔法数。
type Tables struct {
	BaseYields           map[string]float64   `mapstructure:"base_yields"`
	SoilFactors          map[string]float64   `mapstructure:"soil_factors"`
	IrrigationFactors    map[string]float64   `mapstructure:"irrigation_factors"`
	FertilizationFactors map[string]float64   `mapstructure:"fertilization_factors"`
	SeasonFactors        map[string]float64   `mapstructure:"season_factors"`
	YieldUnits           map[string]string    `mapstructure:"yield_units"`
	BasePrices           map[string]BasePrice `mapstructure:"base_prices"`
	QualityMultipliers   map[string]float64   `mapstructure:"quality_multipliers"`
}

const (
	defaultBaseYield  = 5.0
	defaultPriceValue = 10.0
	defaultPriceUnit  = "unit"
	defaultYieldUnit  = "tons/acre"
	organicMultiplier = 1.4
)

func DefaultTables() Tables {
	return Tables{
		BaseYields: map[string]float64{
			"corn":    8.5,
			"wheat":   3.2,
			"rice":    4.5,
			"soybean": 3.0,
			"potato":  20.0,
			"tomato":  25.0,
			"cotton":  0.8,
			"coffee":  0.6,
		},
		SoilFactors: map[string]float64{
			"clay":  0.9,
			"loam":  1.2,
			"sandy": 0.8,
			"silty": 1.0,
			"peaty": 1.1,
		},
		IrrigationFactors: map[string]float64{
			"low":    0.7,
			"medium": 1.0,
			"high":   1.3,
		},
		FertilizationFactors: map[string]float64{
			"low":    0.6,
			"medium": 1.0,
			"high":   1.4,
		},
		SeasonFactors: map[string]float64{
			"spring": 1.1,
			"summer": 1.0,
			"fall":   0.9,
			"winter": 0.7,
		},
		YieldUnits: map[string]string{
			"corn":    "bushels/acre",
			"wheat":   "bushels/acre",
			"rice":    "cwt/acre",
			"soybean": "bushels/acre",
			"potato":  "cwt/acre",
			"tomato":  "tons/acre",
			"cotton":  "bales/acre",
			"coffee":  "tons/acre",
		},
		BasePrices: map[string]BasePrice{
			"corn":    {Price: 5.75, Unit: "bushel"},
			"wheat":   {Price: 7.20, Unit: "bushel"},
			"rice":    {Price: 14.50, Unit: "cwt"},
			"soybean": {Price: 13.80, Unit: "bushel"},
			"potato":  {Price: 12.50, Unit: "cwt"},
			"tomato":  {Price: 0.85, Unit: "pound"},
			"cotton":  {Price: 0.72, Unit: "pound"},
			"coffee":  {Price: 1.95, Unit: "pound"},
		},
		QualityMultipliers: map[string]float64{
			"low":             0.8,
			"standard":        1.0,
			"premium":         1.35,
			"organic premium": 1.75,
		},
	}
}

// LoadTables 从 YAML 读因子表，缺的分表回退到默认值；path 为空直接用默认表。
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Tables{}, err
	}
	var override Tables
	if err := v.Unmarshal(&override); err != nil {
		return Tables{}, err
	}
	if len(override.BaseYields) > 0 {
		t.BaseYields = override.BaseYields
	}
	if len(override.SoilFactors) > 0 {
		t.SoilFactors = override.SoilFactors
	}
	if len(override.IrrigationFactors) > 0 {
		t.IrrigationFactors = override.IrrigationFactors
	}
	if len(override.FertilizationFactors) > 0 {
		t.FertilizationFactors = override.FertilizationFactors
	}
	if len(override.SeasonFactors) > 0 {
		t.SeasonFactors = override.SeasonFactors
	}
	if len(override.YieldUnits) > 0 {
		t.YieldUnits = override.YieldUnits
	}
	if len(override.BasePrices) > 0 {
		t.BasePrices = override.BasePrices
	}
	if len(override.QualityMultipliers) > 0 {
		t.QualityMultipliers = override.QualityMultipliers
	}
	return t, nil
}
