package ports

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// RecomputeJob asks for one operator to be recomputed.
type RecomputeJob struct {
	ID         string     `json:"id"`
	OperatorID string     `json:"operatorId"`
	Status     JobStatus  `json:"status"`
	Attempts   int        `json:"attempts"`
	Error      string     `json:"error,omitempty"`
	QueuedAt   time.Time  `json:"queuedAt"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// JobRepository supports enqueuing, claiming and updating recompute jobs.
type JobRepository interface {
	Enqueue(ctx context.Context, operatorID string) (jobID string, err error)
	Job(ctx context.Context, jobID string) (RecomputeJob, error)
	ClaimNext(ctx context.Context) (job RecomputeJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	// StartJob moves one specific queued job to running.
	StartJob(ctx context.Context, jobID string) (RecomputeJob, error)
}
