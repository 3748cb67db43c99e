package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

var result = domain.RbsResult{
	ExposureLevel:    domain.ExposureC,
	PerformanceScore: 42.5,
	IndicatorLevel:   domain.IndicatorHigh,
}

func TestRecordAppends(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r := NewRecorder(func() time.Time { return now })
	var h domain.History

	econ := 2.5
	e, err := r.Record(&h, result, &econ, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskIndicatorHistoryEntry{
		Date:               now,
		TechnicalIndicator: domain.IndicatorHigh,
		EconomicIndicator:  2.5,
		PerformanceScore:   42.5,
		ExposureLevel:      domain.ExposureC,
	}, e)

	backfill := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = r.Record(&h, result, nil, &backfill)
	require.NoError(t, err)

	entries := h.Entries()
	require.Len(t, entries, 2)
	// append order is kept even when a later entry is dated earlier
	assert.Equal(t, now, entries[0].Date)
	assert.Equal(t, backfill, entries[1].Date)
	assert.Zero(t, entries[1].EconomicIndicator)

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, backfill, latest.Date)
	newest, ok := h.LatestByDate()
	require.True(t, ok)
	assert.Equal(t, now, newest.Date)

	sorted := h.Between(time.Time{}, time.Time{})
	assert.Equal(t, backfill, sorted[0].Date)
}

func TestRecordRejects(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	r := NewRecorder(func() time.Time { return now })
	var h domain.History

	_, err := r.Record(&h, domain.RbsResult{}, nil, nil)
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)

	future := now.Add(time.Hour)
	_, err = r.Record(&h, result, nil, &future)
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)

	var zero time.Time
	_, err = r.Record(&h, result, nil, &zero)
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)

	assert.Zero(t, h.Len())
}

func TestEntriesAreCopies(t *testing.T) {
	r := NewRecorder(nil)
	var h domain.History
	_, err := r.Record(&h, result, nil, nil)
	require.NoError(t, err)

	got := h.Entries()
	got[0].PerformanceScore = -1
	assert.Equal(t, 42.5, h.Entries()[0].PerformanceScore)
}
