package recompute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alifrahmanhakim/AOC-RBS/internal/adapters/memory"
	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

func TestEnqueue(t *testing.T) {
	ctx := context.Background()
	ops := memory.NewOperators()
	require.NoError(t, ops.Create(ctx, domain.Operator{ID: "a", Name: "A"}))
	require.NoError(t, ops.Create(ctx, domain.Operator{ID: "b", Name: "B"}))
	svc := New(ops, memory.NewJobs())

	id, err := svc.Enqueue(ctx, "a")
	require.NoError(t, err)
	job, err := svc.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a", job.OperatorID)
	assert.Equal(t, ports.JobQueued, job.Status)

	_, err = svc.Enqueue(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	ids, err := svc.EnqueueAll(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = svc.Status(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
