package recomputerunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alifrahmanhakim/AOC-RBS/internal/adapters/memory"
	"github.com/alifrahmanhakim/AOC-RBS/internal/metrics"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

type recordingProcessor struct {
	mu   sync.Mutex
	seen []string
	fail map[string]bool
}

func (p *recordingProcessor) Process(ctx context.Context, operatorID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, operatorID)
	if p.fail[operatorID] {
		return errors.New("invalid input: complianceData.totalChecklistItems: must be positive")
	}
	return nil
}

func (p *recordingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

func newRunner(p Processor) (*Runner, *memory.Jobs) {
	jobs := memory.NewJobs()
	return New(jobs, p, metrics.New(prometheus.NewRegistry()), zap.NewNop()), jobs
}

func TestRunProcessesQueue(t *testing.T) {
	p := &recordingProcessor{fail: map[string]bool{"bad": true}}
	r, jobs := newRunner(p)
	ctx, cancel := context.WithCancel(context.Background())

	var ids []string
	for _, op := range []string{"a", "b", "bad", "c"} {
		id, err := jobs.Enqueue(ctx, op)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	done := make(chan struct{})
	go func() {
		r.Run(ctx, 2, 5*time.Millisecond)
		close(done)
	}()
	require.Eventually(t, func() bool { return p.count() == 4 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		for _, id := range ids {
			j, _ := jobs.Job(context.Background(), id)
			if j.Status == ports.JobQueued || j.Status == ports.JobRunning {
				return false
			}
		}
		return true
	}, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	bad, err := jobs.Job(context.Background(), ids[2])
	require.NoError(t, err)
	assert.Equal(t, ports.JobFailed, bad.Status)
	assert.Contains(t, bad.Error, "invalid input")

	good, err := jobs.Job(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, ports.JobCompleted, good.Status)
}

func TestRunNoWorkers(t *testing.T) {
	r, _ := newRunner(&recordingProcessor{})
	r.Run(context.Background(), 0, time.Millisecond)
}

func TestProcessInline(t *testing.T) {
	p := &recordingProcessor{fail: map[string]bool{"bad": true}}
	r, jobs := newRunner(p)
	ctx := context.Background()

	id, _ := jobs.Enqueue(ctx, "a")
	require.NoError(t, r.ProcessInline(ctx, id))
	j, _ := jobs.Job(ctx, id)
	assert.Equal(t, ports.JobCompleted, j.Status)

	// a job cannot be run twice
	assert.Error(t, r.ProcessInline(ctx, id))

	badID, _ := jobs.Enqueue(ctx, "bad")
	assert.Error(t, r.ProcessInline(ctx, badID))
	j, _ = jobs.Job(ctx, badID)
	assert.Equal(t, ports.JobFailed, j.Status)
}
