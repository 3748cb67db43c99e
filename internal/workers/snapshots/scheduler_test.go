package snapshots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeEnqueuer struct {
	calls int
	ids   []string
	err   error
}

func (f *fakeEnqueuer) EnqueueAll(context.Context) ([]string, error) {
	f.calls++
	return f.ids, f.err
}

func TestNewRejectsBadSpec(t *testing.T) {
	_, err := New("every full moon", &fakeEnqueuer{}, zap.NewNop())
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	q := &fakeEnqueuer{ids: []string{"a", "b"}}
	s, err := New("0 2 1 * *", q, zap.New(core))
	require.NoError(t, err)

	s.run()
	assert.Equal(t, 1, q.calls)
	entries := logs.FilterMessage("snapshot recomputes queued").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["queued"])

	q.err = errors.New("db down")
	s.run()
	assert.Equal(t, 1, logs.FilterMessage("snapshot enqueue failed").Len())
}

func TestStartStop(t *testing.T) {
	s, err := New("@monthly", &fakeEnqueuer{}, zap.NewNop())
	require.NoError(t, err)
	s.Start()
	assert.False(t, s.Next().IsZero())
	s.Stop()
}
