// Package snapshots periodically queues a recompute of every operator so the
// risk indicator history gains a dated entry even when no input changed.
package snapshots

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const runTimeout = time.Minute

type enqueuer interface {
	EnqueueAll(ctx context.Context) ([]string, error)
}

type Scheduler struct {
	cron       *cron.Cron
	recomputes enqueuer
	log        *zap.Logger
	entry      cron.EntryID
}

// New schedules the snapshot run on a standard five-field cron spec,
// evaluated in UTC.
func New(spec string, recomputes enqueuer, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		recomputes: recomputes,
		log:        log,
	}
	id, err := s.cron.AddFunc(spec, s.run)
	if err != nil {
		return nil, fmt.Errorf("schedule snapshots %q: %w", spec, err)
	}
	s.entry = id
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("snapshot scheduler started", zap.Time("next_run", s.Next()))
}

// Stop prevents further runs and waits for a running one to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("snapshot scheduler stopped")
}

// Next is the time of the next scheduled run; zero before Start.
func (s *Scheduler) Next() time.Time { return s.cron.Entry(s.entry).Next }

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	ids, err := s.recomputes.EnqueueAll(ctx)
	if err != nil {
		s.log.Error("snapshot enqueue failed", zap.Int("queued", len(ids)), zap.Error(err))
		return
	}
	s.log.Info("snapshot recomputes queued", zap.Int("queued", len(ids)))
}
