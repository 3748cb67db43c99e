package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

func TestOperatorsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOperators()

	op := domain.Operator{ID: "op-1", Name: "Garuda", Inputs: domain.DefaultInputs()}
	require.NoError(t, repo.Create(ctx, op))
	assert.Error(t, repo.Create(ctx, op))

	got, err := repo.Get(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, "Garuda", got.Name)

	got.Name = "mutated"
	again, _ := repo.Get(ctx, "op-1")
	assert.Equal(t, "Garuda", again.Name)

	_, err = repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Save(ctx, domain.Operator{ID: "nope"}, nil), ports.ErrNotFound)
}

func TestOperatorsSaveAppendsOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewOperators()
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	op := domain.Operator{ID: "op-1", History: domain.NewHistory(domain.RiskIndicatorHistoryEntry{Date: d1})}
	require.NoError(t, repo.Create(ctx, op))

	// a caller that forged its history copy cannot rewrite the stored log
	op.History = domain.NewHistory()
	op.Name = "renamed"
	require.NoError(t, repo.Save(ctx, op, &domain.RiskIndicatorHistoryEntry{Date: d2}))

	got, err := repo.Get(ctx, "op-1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	entries := got.History.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, d1, entries[0].Date)
	assert.Equal(t, d2, entries[1].Date)

	require.NoError(t, repo.Save(ctx, got, nil))
	h, err := repo.History(ctx, "op-1", d2, time.Time{})
	require.NoError(t, err)
	assert.Len(t, h, 1)
}

func TestOperatorsList(t *testing.T) {
	ctx := context.Background()
	repo := NewOperators()
	require.NoError(t, repo.Create(ctx, domain.Operator{ID: "b", Name: "Batik"}))
	require.NoError(t, repo.Create(ctx, domain.Operator{ID: "a", Name: "Lion"}))

	ops, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "Batik", ops[0].Name)

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestJobs(t *testing.T) {
	ctx := context.Background()
	q := NewJobs()

	first, _ := q.Enqueue(ctx, "op-1")
	second, _ := q.Enqueue(ctx, "op-2")

	started, err := q.StartJob(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, ports.JobRunning, started.Status)
	_, err = q.StartJob(ctx, second)
	assert.ErrorIs(t, err, ports.ErrJobNotQueued)

	job, found, err := q.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first, job.ID)
	assert.Equal(t, 1, job.Attempts)

	// the second job was started directly and is not claimed twice
	_, found, err = q.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, q.MarkCompleted(ctx, first))
	require.NoError(t, q.MarkFailed(ctx, second, "boom"))
	j, err := q.Job(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, ports.JobFailed, j.Status)
	assert.Equal(t, "boom", j.Error)
	assert.NotNil(t, j.FinishedAt)

	_, err = q.Job(ctx, "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
