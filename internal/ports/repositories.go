package ports

import (
	"context"
	"time"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

// OperatorRepository stores operator aggregates.
type OperatorRepository interface {
	Create(ctx context.Context, op domain.Operator) error
	Get(ctx context.Context, id string) (domain.Operator, error)
	List(ctx context.Context) ([]domain.Operator, error)
	ListIDs(ctx context.Context) ([]string, error)
	// Save replaces the mutable state of op and, when entry is non-nil,
	// appends it to the operator's history. Both happen or neither does.
	// The history already stored is never rewritten.
	Save(ctx context.Context, op domain.Operator, entry *domain.RiskIndicatorHistoryEntry) error
	// History returns entries dated within [from, to] sorted by date; zero
	// bounds are open.
	History(ctx context.Context, operatorID string, from, to time.Time) ([]domain.RiskIndicatorHistoryEntry, error)
}

var (
	ErrNotFound = errString("not found")
	// ErrJobNotQueued is returned when a job was already claimed by someone
	// else.
	ErrJobNotQueued = errString("job is not queued")
)

type errString string

func (e errString) Error() string { return string(e) }
