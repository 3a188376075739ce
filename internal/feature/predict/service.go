package predict

import (
	"math"
	"math/rand"
)

// RandFunc 返回 [0,1) 均匀随机数。注入以便测试固定序列。
type RandFunc func() float64

type Service struct {
	tables Tables
	random RandFunc
}

func NewService(t Tables, r RandFunc) *Service {
	if r == nil {
		r = rand.Float64
	}
	return &Service{tables: t, random: r}
}

func (s *Service) Tables() Tables { return s.tables }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func factor(m map[string]float64, key string, def float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
