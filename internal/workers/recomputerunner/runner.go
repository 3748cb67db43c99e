package recomputerunner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/metrics"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

// Processor performs the recompute for a job's operator id.
type Processor interface {
	Process(ctx context.Context, operatorID string) error
}

type recomputer interface {
	Recompute(ctx context.Context, id string) (domain.Operator, error)
}

// OperatorProcessor recomputes through the operator service so jobs take
// the same per-operator lock as direct updates.
type OperatorProcessor struct{ Operators recomputer }

func (p OperatorProcessor) Process(ctx context.Context, operatorID string) error {
	_, err := p.Operators.Recompute(ctx, operatorID)
	return err
}

// Runner claims queued jobs and processes them with a fixed worker pool.
type Runner struct {
	repo      ports.JobRepository
	processor Processor
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func New(repo ports.JobRepository, processor Processor, m *metrics.Metrics, log *zap.Logger) *Runner {
	return &Runner{repo: repo, processor: processor, metrics: m, log: log}
}

// Run starts worker goroutines and blocks until ctx is done and every
// claimed job has been settled.
func (r *Runner) Run(ctx context.Context, concurrency int, pollInterval time.Duration) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.RecomputeJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		defer close(jobsCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					job, found, err := r.repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							r.log.Error("job claim failed", zap.Error(err))
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						// claimed but never handed out; settle it so it is not stuck running
						_ = r.repo.MarkFailed(context.WithoutCancel(ctx), job.ID, "shutdown before processing")
						return
					}
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				r.settle(ctx, idx, job, r.processor.Process(ctx, job.OperatorID))
			}
		}(i)
	}
	wg.Wait()
}

func (r *Runner) settle(ctx context.Context, worker int, job ports.RecomputeJob, err error) {
	ctx = context.WithoutCancel(ctx)
	if err != nil {
		if mErr := r.repo.MarkFailed(ctx, job.ID, err.Error()); mErr != nil {
			r.log.Error("mark failed", zap.String("job_id", job.ID), zap.Error(mErr))
		}
		r.metrics.JobFinished(string(ports.JobFailed))
		r.log.Warn("recompute job failed",
			zap.Int("worker", worker),
			zap.String("job_id", job.ID),
			zap.String("operator_id", job.OperatorID),
			zap.Error(err))
		return
	}
	if err := r.repo.MarkCompleted(ctx, job.ID); err != nil {
		r.log.Error("mark completed", zap.String("job_id", job.ID), zap.Error(err))
		return
	}
	r.metrics.JobFinished(string(ports.JobCompleted))
}

// ProcessInline runs a specific queued job synchronously with the same
// processor the background workers use.
func (r *Runner) ProcessInline(ctx context.Context, jobID string) error {
	job, err := r.repo.StartJob(ctx, jobID)
	if err != nil {
		return err
	}
	err = r.processor.Process(ctx, job.OperatorID)
	r.settle(ctx, -1, job, err)
	return err
}
