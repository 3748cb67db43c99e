package recompute

import (
	"context"
	"fmt"

	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

type Service struct {
	operators ports.OperatorRepository
	jobs      ports.JobRepository
}

func New(operators ports.OperatorRepository, jobs ports.JobRepository) *Service {
	return &Service{operators: operators, jobs: jobs}
}

// Enqueue queues a recompute for an existing operator.
func (s *Service) Enqueue(ctx context.Context, operatorID string) (string, error) {
	if _, err := s.operators.Get(ctx, operatorID); err != nil {
		return "", err
	}
	return s.jobs.Enqueue(ctx, operatorID)
}

// EnqueueAll queues one recompute per operator.
func (s *Service) EnqueueAll(ctx context.Context) ([]string, error) {
	ids, err := s.operators.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	jobIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		jobID, err := s.jobs.Enqueue(ctx, id)
		if err != nil {
			return jobIDs, fmt.Errorf("enqueue %s: %w", id, err)
		}
		jobIDs = append(jobIDs, jobID)
	}
	return jobIDs, nil
}

func (s *Service) Status(ctx context.Context, jobID string) (ports.RecomputeJob, error) {
	return s.jobs.Job(ctx, jobID)
}
