package rbs

import "github.com/alifrahmanhakim/AOC-RBS/internal/domain"

// Normalization decides how the four corrective action counts are read.
//
// Whether the maturity counts describe one population at increasing maturity
// or independent populations per stage is not settled by the source data, so
// the choice is a single swappable function selected by configuration.
type Normalization string

const (
	// NormalizeIndependent treats each stage count as its own population of
	// cases. Every count is weighted and summed; no count may exceed the number
	// of cases. I(p) lies in [0, sum of weights].
	NormalizeIndependent Normalization = "independent"

	// NormalizeCumulative treats the counts as one population on a ladder
	// (root cause >= hazard identified >= risk assessed >= risk mitigated).
	// Each case is credited once, at the highest stage it reached. I(p) lies
	// in [0, risk mitigated weight].
	NormalizeCumulative Normalization = "cumulative"
)

type normalizer func(stages [4]int, cases int, w ImprovementWeights) (float64, error)

var normalizers = map[Normalization]normalizer{
	NormalizeIndependent: normalizeIndependent,
	NormalizeCumulative:  normalizeCumulative,
}

var stageFields = [4]string{
	"improvementData.correctiveActionsRootCause",
	"improvementData.correctiveActionsHazardIdentified",
	"improvementData.correctiveActionsRiskAssessed",
	"improvementData.correctiveActionsRiskMitigated",
}

func stageCounts(d domain.ImprovementData) [4]int {
	return [4]int{
		d.CorrectiveActionsRootCause,
		d.CorrectiveActionsHazardIdentified,
		d.CorrectiveActionsRiskAssessed,
		d.CorrectiveActionsRiskMitigated,
	}
}

func stageWeights(w ImprovementWeights) [4]float64 {
	return [4]float64{w.RootCause, w.HazardIdentified, w.RiskAssessed, w.RiskMitigated}
}

func normalizeIndependent(stages [4]int, cases int, w ImprovementWeights) (float64, error) {
	weights := stageWeights(w)
	var sum float64
	for i, n := range stages {
		if n > cases {
			return 0, invalid(stageFields[i], "%d exceeds the %d deviations and findings", n, cases)
		}
		sum += weights[i] * float64(n)
	}
	return sum / float64(cases), nil
}

func normalizeCumulative(stages [4]int, cases int, w ImprovementWeights) (float64, error) {
	if stages[0] > cases {
		return 0, invalid(stageFields[0], "%d exceeds the %d deviations and findings", stages[0], cases)
	}
	for i := 1; i < len(stages); i++ {
		if stages[i] > stages[i-1] {
			return 0, invalid(stageFields[i], "%d exceeds the previous maturity stage (%d)", stages[i], stages[i-1])
		}
	}
	weights := stageWeights(w)
	var sum float64
	for i := range stages {
		exclusive := stages[i]
		if i+1 < len(stages) {
			exclusive -= stages[i+1]
		}
		sum += weights[i] * float64(exclusive)
	}
	return sum / float64(cases), nil
}
