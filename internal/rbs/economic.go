package rbs

import (
	"math"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

// EconomicIndicator resolves the 0-5 economic indicator. An explicit score
// wins over the factors; with neither it returns nil.
func EconomicIndicator(score *float64, factors *domain.EconomicFactors) (*float64, error) {
	if score != nil {
		v := *score
		if math.IsNaN(v) || v < 0 || v > domain.MaxEconomicIndicator {
			return nil, invalid("economicIndicatorScore", "must be 0..%v, got %v", domain.MaxEconomicIndicator, v)
		}
		return &v, nil
	}
	if factors == nil {
		return nil, nil
	}
	for _, v := range factors.Values() {
		if math.IsNaN(v) || v < 0 || v > domain.MaxEconomicFactor {
			return nil, invalid("economicFactors", "each factor must be 0..%v, got %v", domain.MaxEconomicFactor, v)
		}
	}
	v := factors.Indicator()
	return &v, nil
}
