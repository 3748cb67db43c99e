package findings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newManager(t *testing.T, now time.Time) *Manager {
	t.Helper()
	m, err := NewManager(DefaultPolicy(), func() time.Time { return now })
	require.NoError(t, err)
	return m
}

func TestTargetDate(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))
	tests := []struct {
		added    time.Time
		category domain.FindingCategoryLevel
		want     time.Time
	}{
		{date(2024, 1, 1), domain.FindingLevel1, date(2024, 1, 16)},
		{date(2024, 1, 1), domain.FindingLevel2, date(2024, 1, 31)},
		{date(2024, 1, 1), domain.FindingLevel3, date(2024, 3, 1)},
		{date(2024, 2, 20), domain.FindingLevel1, date(2024, 3, 6)},
		{date(2023, 12, 20), domain.FindingLevel2, date(2024, 1, 19)},
	}
	for _, tt := range tests {
		got, err := m.TargetDate(tt.added, tt.category)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %s", tt.added.Format(time.DateOnly), tt.category)
	}
}

func TestTargetDateOffsets(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))
	want := map[domain.FindingCategoryLevel]int{1: 15, 2: 30, 3: 60}
	for d := date(2023, 1, 1); d.Before(date(2025, 1, 1)); d = d.AddDate(0, 0, 7) {
		for c, days := range want {
			got, err := m.TargetDate(d, c)
			require.NoError(t, err)
			assert.Equal(t, d.AddDate(0, 0, days), got)
		}
	}
}

func TestTargetDateUsesUTCCalendarDate(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))
	jakarta := time.FixedZone("WIB", 7*60*60)

	// 2024-01-01 03:30 in Jakarta is still 2023-12-31 in UTC.
	got, err := m.TargetDate(time.Date(2024, 1, 1, 3, 30, 0, 0, jakarta), domain.FindingLevel1)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 15), got)

	got, err = m.TargetDate(time.Date(2024, 1, 1, 18, 45, 0, 0, time.UTC), domain.FindingLevel2)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 31), got)
}

func TestTargetDateInvalid(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))
	_, err := m.TargetDate(date(2024, 1, 1), 4)
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)
	_, err = m.TargetDate(time.Time{}, domain.FindingLevel1)
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)
}

func TestPolicyValidate(t *testing.T) {
	require.NoError(t, DefaultPolicy().Validate())

	p := DefaultPolicy()
	delete(p.TargetDays, domain.FindingLevel3)
	_, err := NewManager(p, nil)
	assert.ErrorIs(t, err, rbs.ErrConfiguration)

	p = DefaultPolicy()
	p.TargetDays[domain.FindingLevel1] = 0
	assert.ErrorIs(t, p.Validate(), rbs.ErrConfiguration)
}

func TestOpen(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))

	f, err := m.Open(NewFinding{
		DateAdded: date(2024, 1, 1),
		Finding:   "MEL deferrals not recorded in the tech log",
		Category:  domain.FindingLevel2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.False(t, f.IsCompleted)
	assert.Nil(t, f.ActualCompletionDate)
	assert.Equal(t, date(2024, 1, 31), f.TargetCompletionDate)
}

func TestOpenDefaultsToToday(t *testing.T) {
	m := newManager(t, time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC))
	f, err := m.Open(NewFinding{Finding: "x", Category: domain.FindingLevel1})
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 1), f.DateAdded)
	assert.Equal(t, date(2024, 6, 16), f.TargetCompletionDate)
}

func TestOpenWithPredefinedArea(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))
	area := domain.PredefinedAreas()[0]

	f, err := m.Open(NewFinding{
		DateAdded:        date(2024, 1, 1),
		PredefinedAreaID: area.ID,
		Finding:          "x",
		Category:         domain.FindingLevel3,
	})
	require.NoError(t, err)
	assert.Equal(t, area.Category, f.AreaCategory)
	assert.Equal(t, area.ItemNumber, f.ItemNumber)
	assert.Equal(t, area.AreaDescription, f.AreaDescription)

	other := domain.AreaQMS
	if area.Category == domain.AreaQMS {
		other = domain.AreaSMS
	}
	_, err = m.Open(NewFinding{PredefinedAreaID: area.ID, AreaCategory: other, Finding: "x", Category: domain.FindingLevel1})
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)

	_, err = m.Open(NewFinding{PredefinedAreaID: "no-such-area", Finding: "x", Category: domain.FindingLevel1})
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)
}

func TestOpenRejects(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))
	tests := []struct {
		name string
		in   NewFinding
	}{
		{"empty text", NewFinding{Finding: "  ", Category: domain.FindingLevel1}},
		{"bad category", NewFinding{Finding: "x", Category: 0}},
		{"bad area category", NewFinding{Finding: "x", Category: domain.FindingLevel1, AreaCategory: "cabin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Open(tt.in)
			assert.ErrorIs(t, err, rbs.ErrInvalidInput)
		})
	}
}

func TestCompleteAndReopen(t *testing.T) {
	now := date(2024, 1, 20)
	m := newManager(t, now)
	f, err := m.Open(NewFinding{DateAdded: date(2024, 1, 1), Finding: "x", Category: domain.FindingLevel1})
	require.NoError(t, err)

	require.NoError(t, m.Complete(&f, time.Time{}))
	assert.True(t, f.IsCompleted)
	require.NotNil(t, f.ActualCompletionDate)
	assert.Equal(t, now, *f.ActualCompletionDate)

	err = m.Complete(&f, date(2024, 1, 21))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, now, *f.ActualCompletionDate)

	require.NoError(t, m.Reopen(&f))
	assert.False(t, f.IsCompleted)
	assert.Nil(t, f.ActualCompletionDate)
	assert.Equal(t, date(2024, 1, 16), f.TargetCompletionDate)

	assert.ErrorIs(t, m.Reopen(&f), ErrNotCompleted)
}

func TestCompleteBeforeAdded(t *testing.T) {
	m := newManager(t, date(2024, 6, 1))
	f, err := m.Open(NewFinding{DateAdded: date(2024, 3, 1), Finding: "x", Category: domain.FindingLevel1})
	require.NoError(t, err)
	err = m.Complete(&f, date(2024, 2, 1))
	assert.ErrorIs(t, err, rbs.ErrInvalidInput)
	assert.False(t, f.IsCompleted)
}

func TestOverdue(t *testing.T) {
	m := newManager(t, date(2024, 2, 1))
	late, _ := m.Open(NewFinding{DateAdded: date(2024, 1, 1), Finding: "late", Category: domain.FindingLevel1})
	onTime, _ := m.Open(NewFinding{DateAdded: date(2024, 1, 2), Finding: "due today", Category: domain.FindingLevel2})
	done, _ := m.Open(NewFinding{DateAdded: date(2023, 1, 1), Finding: "done", Category: domain.FindingLevel1})
	require.NoError(t, m.Complete(&done, date(2023, 1, 5)))

	assert.True(t, m.IsOverdue(late))
	assert.False(t, m.IsOverdue(onTime))
	assert.False(t, m.IsOverdue(done))

	got := m.Overdue([]domain.SurveillanceFinding{late, onTime, done})
	require.Len(t, got, 1)
	assert.Equal(t, "late", got[0].Finding)
}
