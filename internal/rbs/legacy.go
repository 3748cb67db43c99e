package rbs

import (
	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

const (
	minLegacyScale = 1
	maxLegacyScale = 5
)

// OccurrencesScore sums the severity weights of the occurrences.
func (e *Engine) OccurrencesScore(occ []domain.Occurrence) (int, error) {
	var score int
	for i, o := range occ {
		w, ok := e.tables.Legacy.Severity[o.Severity]
		if !ok {
			return 0, invalid("legacyRiskFactors.occurrences", "occurrence %d: unknown severity %q", i, o.Severity)
		}
		if o.Type != "" && !o.Type.IsValid() {
			return 0, invalid("legacyRiskFactors.occurrences", "occurrence %d: unknown type %q", i, o.Type)
		}
		if !o.Category.IsValid() {
			return 0, invalid("legacyRiskFactors.occurrences", "occurrence %d: unknown category %q", i, o.Category)
		}
		score += w
	}
	return score, nil
}

// LegacyScore is frequency*Wf + environment*We + occurrences*Wo. Frequency
// and environment are on a 1..5 scale.
func (e *Engine) LegacyScore(frequency, environment, occurrences int) (int, error) {
	if frequency < minLegacyScale || frequency > maxLegacyScale {
		return 0, invalid("legacyRiskFactors.aircraftFrequency", "must be %d..%d, got %d", minLegacyScale, maxLegacyScale, frequency)
	}
	if environment < minLegacyScale || environment > maxLegacyScale {
		return 0, invalid("legacyRiskFactors.environmentalComplexity", "must be %d..%d, got %d", minLegacyScale, maxLegacyScale, environment)
	}
	if occurrences < 0 {
		return 0, invalid("occurrencesScore", "must not be negative, got %d", occurrences)
	}
	l := e.tables.Legacy
	return frequency*l.FrequencyWeight + environment*l.EnvironmentWeight + occurrences*l.OccurrenceWeight, nil
}

// ClassifyLegacy maps a legacy score onto its inclusive range.
func (e *Engine) ClassifyLegacy(score int) (domain.RiskLevel, error) {
	if score < 0 {
		return "", invalid("legacyScore", "must not be negative, got %d", score)
	}
	s := float64(score)
	for _, b := range e.tables.Legacy.Levels {
		if s >= b.Min && s <= b.Max {
			return b.Level, nil
		}
	}
	return "", misconfigured("legacy", "no level for score %d", score)
}

// ComputeLegacyRisk scores the legacy factors. It reads nothing from, and
// feeds nothing into, the RBS pipeline.
func (e *Engine) ComputeLegacyRisk(f domain.LegacyRiskFactors) (domain.LegacyRisk, error) {
	occ, err := e.OccurrencesScore(f.Occurrences)
	if err != nil {
		return domain.LegacyRisk{}, err
	}
	score, err := e.LegacyScore(f.AircraftFrequency, f.EnvironmentalComplexity, occ)
	if err != nil {
		return domain.LegacyRisk{}, err
	}
	level, err := e.ClassifyLegacy(score)
	if err != nil {
		return domain.LegacyRisk{}, err
	}
	return domain.LegacyRisk{Score: score, Level: level}, nil
}
