package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifrahmanhakim/AOC-RBS/internal/adapters/memory"
	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

func TestGetLatest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fm, err := findings.NewManager(findings.DefaultPolicy(), func() time.Time { return now })
	require.NoError(t, err)
	repo := memory.NewOperators()

	late, err := fm.Open(findings.NewFinding{DateAdded: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Finding: "late", Category: domain.FindingLevel1})
	require.NoError(t, err)
	fresh, err := fm.Open(findings.NewFinding{DateAdded: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), Finding: "fresh", Category: domain.FindingLevel3})
	require.NoError(t, err)

	entry := domain.RiskIndicatorHistoryEntry{Date: now, TechnicalIndicator: domain.IndicatorMedium, ExposureLevel: domain.ExposureB}
	require.NoError(t, repo.Create(ctx, domain.Operator{
		ID:       "op-1",
		Name:     "Citilink",
		RBS:      domain.RbsResult{CategoryKey: "3B", IndicatorLevel: domain.IndicatorMedium, ExposureLevel: domain.ExposureB},
		Findings: []domain.SurveillanceFinding{late, fresh},
		History:  domain.NewHistory(entry),
	}))

	prof, err := New(repo, fm).GetLatest(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, "Citilink", prof.Name)
	assert.Equal(t, domain.CategoryKey("3B"), prof.RBS.CategoryKey)
	assert.Equal(t, 2, prof.OpenFindings)
	require.Len(t, prof.OverdueFindings, 1)
	assert.Equal(t, "late", prof.OverdueFindings[0].Finding)
	require.NotNil(t, prof.Latest)
	assert.Equal(t, entry, *prof.Latest)

	_, err = New(repo, fm).GetLatest(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestGetLatestIgnoresBackfilledEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fm, err := findings.NewManager(findings.DefaultPolicy(), func() time.Time { return now })
	require.NoError(t, err)
	repo := memory.NewOperators()

	current := domain.RiskIndicatorHistoryEntry{Date: now, TechnicalIndicator: domain.IndicatorLow, ExposureLevel: domain.ExposureA}
	op := domain.Operator{ID: "op-1", Name: "Lion Air", History: domain.NewHistory(current)}
	require.NoError(t, repo.Create(ctx, op))

	backfill := domain.RiskIndicatorHistoryEntry{
		Date:               time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		TechnicalIndicator: domain.IndicatorVeryHigh,
		ExposureLevel:      domain.ExposureA,
	}
	require.NoError(t, repo.Save(ctx, op, &backfill))

	prof, err := New(repo, fm).GetLatest(ctx, "op-1")
	require.NoError(t, err)
	require.NotNil(t, prof.Latest)
	assert.Equal(t, current, *prof.Latest)
}
