package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

// Jobs is a FIFO recompute queue.
type Jobs struct {
	mu    sync.Mutex
	jobs  map[string]*ports.RecomputeJob
	order []string
	now   func() time.Time
}

func NewJobs() *Jobs {
	return &Jobs{jobs: make(map[string]*ports.RecomputeJob), now: time.Now}
}

func (q *Jobs) Enqueue(ctx context.Context, operatorID string) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := uuid.NewString()
	q.jobs[id] = &ports.RecomputeJob{ID: id, OperatorID: operatorID, Status: ports.JobQueued, QueuedAt: q.now().UTC()}
	q.order = append(q.order, id)
	return id, nil
}

func (q *Jobs) Job(ctx context.Context, jobID string) (ports.RecomputeJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	j, ok := q.jobs[jobID]
	if !ok {
		return ports.RecomputeJob{}, ports.ErrNotFound
	}
	return *j, nil
}

// ClaimNext marks the oldest queued job running.
func (q *Jobs) ClaimNext(ctx context.Context) (ports.RecomputeJob, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.order) > 0 {
		id := q.order[0]
		q.order = q.order[1:]
		if j := q.jobs[id]; j.Status == ports.JobQueued {
			q.start(j)
			return *j, true, nil
		}
	}
	return ports.RecomputeJob{}, false, nil
}

func (q *Jobs) StartJob(ctx context.Context, jobID string) (ports.RecomputeJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	j, ok := q.jobs[jobID]
	if !ok {
		return ports.RecomputeJob{}, ports.ErrNotFound
	}
	if j.Status != ports.JobQueued {
		return ports.RecomputeJob{}, fmt.Errorf("job %s is %s: %w", jobID, j.Status, ports.ErrJobNotQueued)
	}
	q.start(j)
	return *j, nil
}

func (q *Jobs) start(j *ports.RecomputeJob) {
	now := q.now().UTC()
	j.Status = ports.JobRunning
	j.StartedAt = &now
	j.Attempts++
}

func (q *Jobs) MarkCompleted(ctx context.Context, jobID string) error {
	return q.finish(jobID, ports.JobCompleted, "")
}

func (q *Jobs) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return q.finish(jobID, ports.JobFailed, reason)
}

func (q *Jobs) finish(jobID string, status ports.JobStatus, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	j, ok := q.jobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	now := q.now().UTC()
	j.Status = status
	j.Error = reason
	j.FinishedAt = &now
	return nil
}
