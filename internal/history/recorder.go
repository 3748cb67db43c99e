// Package history turns completed recomputes into risk indicator history
// entries.
package history

import (
	"time"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

type Recorder struct {
	now func() time.Time
}

// NewRecorder uses now to date entries; nil means time.Now.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Entry builds the snapshot of res. A non-nil effective date backdates the
// entry for backfilled data; it may not lie in the future.
func (r *Recorder) Entry(res domain.RbsResult, economic *float64, effective *time.Time) (domain.RiskIndicatorHistoryEntry, error) {
	if !res.IndicatorLevel.IsValid() || !res.ExposureLevel.IsValid() {
		return domain.RiskIndicatorHistoryEntry{}, &rbs.InvalidInputError{Field: "rbs", Reason: "no complete result to record"}
	}
	now := r.now().UTC()
	date := now
	if effective != nil {
		if effective.IsZero() {
			return domain.RiskIndicatorHistoryEntry{}, &rbs.InvalidInputError{Field: "effectiveDate", Reason: "must not be zero"}
		}
		if effective.After(now) {
			return domain.RiskIndicatorHistoryEntry{}, &rbs.InvalidInputError{Field: "effectiveDate", Reason: "must not be in the future"}
		}
		date = effective.UTC()
	}
	e := domain.RiskIndicatorHistoryEntry{
		Date:               date,
		TechnicalIndicator: res.IndicatorLevel,
		PerformanceScore:   res.PerformanceScore,
		ExposureLevel:      res.ExposureLevel,
	}
	if economic != nil {
		e.EconomicIndicator = *economic
	}
	return e, nil
}

// Record appends the snapshot of res to h and returns it.
func (r *Recorder) Record(h *domain.History, res domain.RbsResult, economic *float64, effective *time.Time) (domain.RiskIndicatorHistoryEntry, error) {
	e, err := r.Entry(res, economic, effective)
	if err != nil {
		return e, err
	}
	h.Append(e)
	return e, nil
}
