package rbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

func TestResolveSurveillanceCycleTotal(t *testing.T) {
	e := newTestEngine(t)
	for _, lvl := range domain.IndicatorLevels {
		for _, exp := range domain.ExposureLevels {
			months, err := e.ResolveSurveillanceCycle(lvl, exp)
			require.NoError(t, err, "%d%s", lvl, exp)
			assert.Positive(t, months)
		}
	}
	assert.Len(t, e.Matrix(), 25)
}

func TestResolveSurveillanceCycleKnownCells(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		level  domain.IndicatorLevel
		exp    domain.ExposureLevel
		months int
	}{
		{1, domain.ExposureA, 18},
		{1, domain.ExposureC, 12},
		{2, domain.ExposureB, 12},
		{2, domain.ExposureD, 6},
		{3, domain.ExposureA, 12},
		{4, domain.ExposureA, 12},
		{4, domain.ExposureB, 6},
		{5, domain.ExposureE, 6},
	}
	for _, tt := range tests {
		got, err := e.ResolveSurveillanceCycle(tt.level, tt.exp)
		require.NoError(t, err)
		assert.Equal(t, tt.months, got, "%d%s", tt.level, tt.exp)
	}
}

func TestMatrixMonotonic(t *testing.T) {
	e := newTestEngine(t)
	for _, lvl := range domain.IndicatorLevels {
		for _, exp := range domain.ExposureLevels {
			here, err := e.ResolveSurveillanceCycle(lvl, exp)
			require.NoError(t, err)
			if lvl > 1 {
				worseFrom, err := e.ResolveSurveillanceCycle(lvl-1, exp)
				require.NoError(t, err)
				assert.LessOrEqual(t, here, worseFrom, "%d%s vs %d%s", lvl, exp, lvl-1, exp)
			}
			if r := exp.Rank(); r > 1 {
				lower := domain.ExposureLevels[r-2]
				worseFrom, err := e.ResolveSurveillanceCycle(lvl, lower)
				require.NoError(t, err)
				assert.LessOrEqual(t, here, worseFrom, "%d%s vs %d%s", lvl, exp, lvl, lower)
			}
		}
	}
}

func TestResolveSurveillanceCycleInvalid(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.ResolveSurveillanceCycle(0, domain.ExposureA)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = e.ResolveSurveillanceCycle(6, domain.ExposureA)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = e.ResolveSurveillanceCycle(3, "F")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLookupMissIsSurfaced(t *testing.T) {
	e := newTestEngine(t)
	// Tables are validated at construction; simulate a drifted engine.
	delete(e.tables.Matrix, "3C")
	_, err := e.ResolveSurveillanceCycle(3, domain.ExposureC)
	require.ErrorIs(t, err, ErrLookupMiss)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestCategoryKeyRoundTrip(t *testing.T) {
	for _, lvl := range domain.IndicatorLevels {
		for _, exp := range domain.ExposureLevels {
			key := CategoryKeyOf(lvl, exp)
			gotLvl, gotExp, err := ParseCategoryKey(string(key))
			require.NoError(t, err)
			assert.Equal(t, lvl, gotLvl)
			assert.Equal(t, exp, gotExp)
		}
	}
	assert.Equal(t, domain.CategoryKey("3C"), CategoryKeyOf(3, domain.ExposureC))
}

func TestParseCategoryKeyRejects(t *testing.T) {
	for _, key := range []string{"", "3", "0A", "6A", "3F", "3c", "A3", "33C", "-1"} {
		_, _, err := ParseCategoryKey(key)
		assert.ErrorIs(t, err, ErrInvalidInput, "key=%q", key)
	}
}

func TestValidateMatrix(t *testing.T) {
	t.Run("missing cell", func(t *testing.T) {
		tables := DefaultTables()
		delete(tables.Matrix, "4D")
		_, err := NewEngine(tables)
		require.ErrorIs(t, err, ErrConfiguration)
		var ce *ConfigurationError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "matrix", ce.Table)
	})
	t.Run("extra cell", func(t *testing.T) {
		tables := DefaultTables()
		tables.Matrix["6A"] = MatrixCell{Months: 6, Zone: domain.ZoneHigh}
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("non-monotonic", func(t *testing.T) {
		tables := DefaultTables()
		tables.Matrix["5E"] = MatrixCell{Months: 24, Zone: domain.ZoneHigh}
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("zero months", func(t *testing.T) {
		tables := DefaultTables()
		tables.Matrix["5E"] = MatrixCell{Months: 0, Zone: domain.ZoneHigh}
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestValidateThresholds(t *testing.T) {
	t.Run("indicator not exhaustive", func(t *testing.T) {
		tables := DefaultTables()
		tables.Indicator[4].Max = 100
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("indicator out of order", func(t *testing.T) {
		tables := DefaultTables()
		tables.Indicator[1], tables.Indicator[2] = tables.Indicator[2], tables.Indicator[1]
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("exposure missing band", func(t *testing.T) {
		tables := DefaultTables()
		tables.Exposure = tables.Exposure[:4]
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("improvement weights not increasing", func(t *testing.T) {
		tables := DefaultTables()
		tables.Improvement.RiskAssessed = 1.5
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("unknown normalization", func(t *testing.T) {
		tables := DefaultTables()
		tables.Normalization = "ratio"
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("legacy gap", func(t *testing.T) {
		tables := DefaultTables()
		tables.Legacy.Levels[1].Min = 12
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
	t.Run("complexity bounds", func(t *testing.T) {
		tables := DefaultTables()
		tables.Complexity.FleetAge.Bounds = []float64{5, 5, 15, 20}
		_, err := NewEngine(tables)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestMustNewEnginePanicsOnDefect(t *testing.T) {
	tables := DefaultTables()
	tables.Matrix = nil
	assert.Panics(t, func() { MustNewEngine(tables) })
	assert.NotPanics(t, func() { MustNewEngine(DefaultTables()) })
}
