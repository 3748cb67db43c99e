// Package memory holds in-process repositories used when no database is
// configured and by the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

// Operators stores clones so callers never share memory with the store.
type Operators struct {
	mu  sync.RWMutex
	ops map[string]domain.Operator
}

func NewOperators() *Operators {
	return &Operators{ops: make(map[string]domain.Operator)}
}

func (r *Operators) Create(ctx context.Context, op domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[op.ID]; ok {
		return fmt.Errorf("operator %s already exists", op.ID)
	}
	r.ops[op.ID] = op.Clone()
	return nil
}

func (r *Operators) Get(ctx context.Context, id string) (domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[id]
	if !ok {
		return domain.Operator{}, ports.ErrNotFound
	}
	return op.Clone(), nil
}

func (r *Operators) List(ctx context.Context) ([]domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Operator, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Operators) ListIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.ops))
	for id := range r.ops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Save keeps the stored history and appends entry to it; op.History is
// ignored.
func (r *Operators) Save(ctx context.Context, op domain.Operator, entry *domain.RiskIndicatorHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.ops[op.ID]
	if !ok {
		return ports.ErrNotFound
	}
	next := op.Clone()
	next.History = domain.NewHistory(prev.History.Entries()...)
	if entry != nil {
		next.History.Append(*entry)
	}
	r.ops[op.ID] = next
	return nil
}

func (r *Operators) History(ctx context.Context, operatorID string, from, to time.Time) ([]domain.RiskIndicatorHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[operatorID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return op.History.Between(from, to), nil
}
