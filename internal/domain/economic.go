package domain

// EconomicFactors scores an operator's financial health. Each factor is on a
// 0-10 scale where higher is worse.
type EconomicFactors struct {
	Liquidity                 float64 `json:"liquidity" yaml:"liquidity"`
	ShortTermDebt             float64 `json:"shortTermDebt" yaml:"shortTermDebt"`
	LongTermDebt              float64 `json:"longTermDebt" yaml:"longTermDebt"`
	Decapitalization          float64 `json:"decapitalization" yaml:"decapitalization"`
	ProfitabilityAndCashFlows float64 `json:"profitabilityAndCashFlows" yaml:"profitabilityAndCashFlows"`
}

const (
	MaxEconomicFactor    = 10.0
	MaxEconomicIndicator = 5.0
)

// Values returns the factors in a fixed order.
func (f EconomicFactors) Values() []float64 {
	return []float64{f.Liquidity, f.ShortTermDebt, f.LongTermDebt, f.Decapitalization, f.ProfitabilityAndCashFlows}
}

// Indicator folds the factors into the 0-5 economic indicator: the mean factor
// halved.
func (f EconomicFactors) Indicator() float64 {
	vals := f.Values()
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)) / 2
}
