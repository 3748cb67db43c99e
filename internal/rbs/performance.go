package rbs

import (
	"math"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

// ComplianceScore is C(p): severity-weighted finding counts per checklist
// item. It is >= 0 and unbounded above; it stays within [0, High weight]
// while the findings do not outnumber the checklist items.
func (e *Engine) ComplianceScore(d domain.ComplianceData) (float64, error) {
	if d.TotalChecklistItems <= 0 {
		return 0, invalid("complianceData.totalChecklistItems", "must be positive, got %d", d.TotalChecklistItems)
	}
	if err := nonNegativeCounts(
		count{"complianceData.ncp", d.NCP},
		count{"complianceData.ncf", d.NCF},
		count{"complianceData.nad", d.NAD},
	); err != nil {
		return 0, err
	}
	w := e.tables.Compliance
	sum := float64(d.NCP)*w.High + float64(d.NCF)*w.Medium + float64(d.NAD)*w.Low
	return sum / float64(d.TotalChecklistItems), nil
}

// DeviationScore is D(p): severity-weighted occurrence counts per flight
// cycle. Same shape as ComplianceScore.
func (e *Engine) DeviationScore(d domain.DeviationData) (float64, error) {
	if d.TotalFlightCycles <= 0 {
		return 0, invalid("deviationData.totalFlightCycles", "must be positive, got %d", d.TotalFlightCycles)
	}
	if err := nonNegativeCounts(
		count{"deviationData.accidentCount", d.AccidentCount},
		count{"deviationData.seriousIncidentCount", d.SeriousIncidentCount},
		count{"deviationData.incidentCount", d.IncidentCount},
	); err != nil {
		return 0, err
	}
	w := e.tables.Deviation
	sum := float64(d.AccidentCount)*w.High + float64(d.SeriousIncidentCount)*w.Medium + float64(d.IncidentCount)*w.Low
	return sum / float64(d.TotalFlightCycles), nil
}

// ImprovementScore is I(p): maturity-weighted corrective actions normalized
// against the deviations and findings they address. How the four stage counts
// relate to each other is decided by the configured Normalization.
func (e *Engine) ImprovementScore(d domain.ImprovementData) (float64, error) {
	if err := nonNegativeCounts(
		count{"improvementData.totalDeviationsNd", d.TotalDeviationsNd},
		count{"improvementData.totalFindingsNf", d.TotalFindingsNf},
		count{"improvementData.correctiveActionsRootCause", d.CorrectiveActionsRootCause},
		count{"improvementData.correctiveActionsHazardIdentified", d.CorrectiveActionsHazardIdentified},
		count{"improvementData.correctiveActionsRiskAssessed", d.CorrectiveActionsRiskAssessed},
		count{"improvementData.correctiveActionsRiskMitigated", d.CorrectiveActionsRiskMitigated},
		count{"improvementData.totalCorrectiveActionsAppliedToFindings", d.TotalCorrectiveActionsAppliedToFindings},
		count{"improvementData.totalCorrectiveActionsAppliedToDeviations", d.TotalCorrectiveActionsAppliedToDeviations},
	); err != nil {
		return 0, err
	}
	cases := d.TotalDeviationsNd + d.TotalFindingsNf
	stages := stageCounts(d)
	if cases == 0 {
		for _, n := range stages {
			if n > 0 {
				return 0, invalid("improvementData", "corrective actions recorded without any deviation or finding")
			}
		}
		return 0, nil
	}
	return normalizers[e.tables.Normalization](stages, cases, e.tables.Improvement)
}

// PerformanceScore is F(P) = wc*C - wd*D + wi*I. It is deliberately not
// clamped so the raw value stays available for history and audit.
func (e *Engine) PerformanceScore(c, d, i float64) float64 {
	w := e.tables.Performance
	return w.Compliance*c - w.Deviation*d + w.Improvement*i
}

// ClassifyIndicator maps F(P) onto the Risk Indicator Level. Thresholds are
// scanned in ascending order and the first one whose max is >= fp wins, so a
// value on a bound belongs to the lower, worse tier.
func (e *Engine) ClassifyIndicator(fp float64) (domain.IndicatorLevel, string, error) {
	if math.IsNaN(fp) {
		return 0, "", invalid("performanceScore", "NaN")
	}
	for _, th := range e.tables.Indicator {
		if fp <= th.Max {
			return th.Level, th.Label, nil
		}
	}
	return 0, "", misconfigured("indicator", "no threshold for score %v", fp)
}

type count struct {
	field string
	value int
}

func nonNegativeCounts(counts ...count) error {
	for _, c := range counts {
		if c.value < 0 {
			return invalid(c.field, "must not be negative, got %d", c.value)
		}
	}
	return nil
}
