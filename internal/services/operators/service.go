// Package operators keeps operator records and their RBS snapshot in step.
// Every change to an input re-derives the whole snapshot under a
// per-operator lock and stores it together with its history entry.
package operators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/history"
	"github.com/alifrahmanhakim/AOC-RBS/internal/metrics"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

type Service struct {
	repo     ports.OperatorRepository
	engine   *rbs.Engine
	findings *findings.Manager
	recorder *history.Recorder
	metrics  *metrics.Metrics
	log      *zap.Logger
	now      func() time.Time
	locks    keyedMutex
}

type Option func(*Service)

// WithClock replaces time.Now for lastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(repo ports.OperatorRepository, engine *rbs.Engine, fm *findings.Manager, rec *history.Recorder, m *metrics.Metrics, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		engine:   engine,
		findings: fm,
		recorder: rec,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, in ports.NewOperator) (domain.Operator, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Operator{}, &rbs.InvalidInputError{Field: "name", Reason: "required"}
	}
	if !in.Category.IsValid() {
		return domain.Operator{}, &rbs.InvalidInputError{Field: "operatorCategory", Reason: fmt.Sprintf("unknown category %q", in.Category)}
	}
	op := domain.Operator{
		ID:                         uuid.NewString(),
		Name:                       strings.TrimSpace(in.Name),
		AOCNumber:                  strings.TrimSpace(in.AOCNumber),
		Category:                   in.Category,
		HadFatalAccidentLast3Years: in.HadFatalAccidentLast3Years,
		Inputs:                     domain.DefaultInputs(),
	}
	if in.Inputs != nil {
		op.Inputs = *in.Inputs
	}
	op = op.Clone()

	start := time.Now()
	if _, err := s.recompute(&op, nil); err != nil {
		s.observe(op.ID, start, err)
		return domain.Operator{}, err
	}
	if err := s.repo.Create(ctx, op); err != nil {
		s.observe(op.ID, start, err)
		return domain.Operator{}, fmt.Errorf("create operator: %w", err)
	}
	s.observe(op.ID, start, nil)
	s.published(op)
	s.log.Info("operator created", zap.String("operator_id", op.ID), zap.String("aoc_number", op.AOCNumber))
	return op, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Operator, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Operator, error) {
	return s.repo.List(ctx)
}

func (s *Service) History(ctx context.Context, id string, from, to time.Time) ([]domain.RiskIndicatorHistoryEntry, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, &rbs.InvalidInputError{Field: "to", Reason: "before from"}
	}
	return s.repo.History(ctx, id, from, to)
}

// UpdateInputs replaces every input of the operator and recomputes. A non-nil
// effective date backdates the history entry only; the submitted inputs and
// their result still become the current snapshot.
func (s *Service) UpdateInputs(ctx context.Context, id string, in domain.Inputs, effective *time.Time) (domain.Operator, error) {
	return s.mutate(ctx, id, effective, func(op *domain.Operator) (bool, error) {
		op.Inputs = in
		return true, nil
	})
}

// Recompute re-derives the snapshot from unchanged inputs and records a new
// history entry, e.g. for a periodic review.
func (s *Service) Recompute(ctx context.Context, id string) (domain.Operator, error) {
	return s.mutate(ctx, id, nil, func(*domain.Operator) (bool, error) { return true, nil })
}

func (s *Service) AddFinding(ctx context.Context, id string, in findings.NewFinding) (domain.SurveillanceFinding, error) {
	var created domain.SurveillanceFinding
	_, err := s.mutate(ctx, id, nil, func(op *domain.Operator) (bool, error) {
		f, err := s.findings.Open(in)
		if err != nil {
			return false, err
		}
		op.Findings = append(op.Findings, f)
		created = f
		return true, nil
	})
	if err != nil {
		return domain.SurveillanceFinding{}, err
	}
	s.metrics.FindingOpened(int(created.Category))
	return created, nil
}

func (s *Service) CompleteFinding(ctx context.Context, id, findingID string, at time.Time) (domain.SurveillanceFinding, error) {
	var done domain.SurveillanceFinding
	_, err := s.mutate(ctx, id, nil, func(op *domain.Operator) (bool, error) {
		f, ok := op.FindingByID(findingID)
		if !ok {
			return false, fmt.Errorf("finding %s: %w", findingID, ports.ErrNotFound)
		}
		if err := s.findings.Complete(f, at); err != nil {
			return false, err
		}
		done = *f
		return true, nil
	})
	if err != nil {
		return domain.SurveillanceFinding{}, err
	}
	s.metrics.FindingCompleted()
	return done, nil
}

// ReopenFinding is the administrative override that puts a completed finding
// back into the open set.
func (s *Service) ReopenFinding(ctx context.Context, id, findingID string) (domain.SurveillanceFinding, error) {
	var reopened domain.SurveillanceFinding
	_, err := s.mutate(ctx, id, nil, func(op *domain.Operator) (bool, error) {
		f, ok := op.FindingByID(findingID)
		if !ok {
			return false, fmt.Errorf("finding %s: %w", findingID, ports.ErrNotFound)
		}
		if err := s.findings.Reopen(f); err != nil {
			return false, err
		}
		reopened = *f
		return true, nil
	})
	if err != nil {
		return domain.SurveillanceFinding{}, err
	}
	s.log.Warn("finding reopened", zap.String("operator_id", id), zap.String("finding_id", findingID))
	return reopened, nil
}

// UpdateSurveillanceLog upserts the log item of one predefined area. Logs do
// not feed the RBS scores, so no recompute happens.
func (s *Service) UpdateSurveillanceLog(ctx context.Context, id, areaID string, status domain.SurveillanceLogStatus, notes string) (domain.SurveillanceLogItem, error) {
	area, ok := domain.LookupArea(areaID)
	if !ok {
		return domain.SurveillanceLogItem{}, &rbs.InvalidInputError{Field: "areaId", Reason: fmt.Sprintf("unknown area %q", areaID)}
	}
	if !status.IsValid() {
		return domain.SurveillanceLogItem{}, &rbs.InvalidInputError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}
	var item domain.SurveillanceLogItem
	_, err := s.mutate(ctx, id, nil, func(op *domain.Operator) (bool, error) {
		item = domain.SurveillanceLogItem{
			PredefinedAreaID: area.ID,
			Category:         area.Category,
			ItemNumber:       area.ItemNumber,
			Area:             area.AreaDescription,
			Status:           status,
			LastUpdated:      s.now().UTC(),
			Notes:            notes,
		}
		for i := range op.SurveillanceLogs {
			if op.SurveillanceLogs[i].PredefinedAreaID == area.ID {
				item.ID = op.SurveillanceLogs[i].ID
				op.SurveillanceLogs[i] = item
				return false, nil
			}
		}
		item.ID = uuid.NewString()
		op.SurveillanceLogs = append(op.SurveillanceLogs, item)
		return false, nil
	})
	if err != nil {
		return domain.SurveillanceLogItem{}, err
	}
	return item, nil
}

// mutate applies change to a private copy of the operator under the
// operator's lock. When change asks for it the snapshot is recomputed; the
// copy is stored only if everything succeeded.
func (s *Service) mutate(ctx context.Context, id string, effective *time.Time, change func(op *domain.Operator) (recompute bool, err error)) (domain.Operator, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Operator{}, err
	}
	op := current.Clone()
	recompute, err := change(&op)
	if err != nil {
		return domain.Operator{}, err
	}
	if !recompute {
		op.LastUpdated = s.now().UTC()
		if err := s.repo.Save(ctx, op, nil); err != nil {
			return domain.Operator{}, fmt.Errorf("save operator %s: %w", id, err)
		}
		return op, nil
	}

	start := time.Now()
	entry, err := s.recompute(&op, effective)
	if err != nil {
		s.observe(id, start, err)
		return domain.Operator{}, err
	}
	if err := s.repo.Save(ctx, op, &entry); err != nil {
		err = fmt.Errorf("save operator %s: %w", id, err)
		s.observe(id, start, err)
		return domain.Operator{}, err
	}
	s.observe(id, start, nil)
	s.published(op)
	return op, nil
}

// recompute derives every output from op.Inputs and only then writes them
// into op, so a failure leaves op untouched.
func (s *Service) recompute(op *domain.Operator, effective *time.Time) (domain.RiskIndicatorHistoryEntry, error) {
	res, err := s.engine.ComputeRBS(rbs.InputsOf(op))
	if err != nil {
		return domain.RiskIndicatorHistoryEntry{}, err
	}
	legacy, err := s.engine.ComputeLegacyRisk(op.Inputs.Legacy)
	if err != nil {
		return domain.RiskIndicatorHistoryEntry{}, err
	}
	econ, err := rbs.EconomicIndicator(op.Inputs.EconomicIndicatorScore, op.Inputs.EconomicFactors)
	if err != nil {
		return domain.RiskIndicatorHistoryEntry{}, err
	}
	entry, err := s.recorder.Entry(res, econ, effective)
	if err != nil {
		return domain.RiskIndicatorHistoryEntry{}, err
	}

	op.RBS = res
	op.Legacy = legacy
	op.EconomicIndicatorScore = econ
	op.LastUpdated = s.now().UTC()
	op.History.Append(entry)
	return entry, nil
}

func (s *Service) observe(id string, start time.Time, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, rbs.ErrInvalidInput):
		outcome = metrics.OutcomeInvalid
		s.log.Info("recompute rejected", zap.String("operator_id", id), zap.Error(err))
	default:
		outcome = metrics.OutcomeError
		s.log.Error("recompute failed", zap.String("operator_id", id), zap.Error(err))
	}
	s.metrics.ObserveRecompute(outcome, time.Since(start))
}

func (s *Service) published(op domain.Operator) {
	s.metrics.SetIndicator(op.ID, string(op.RBS.CategoryKey), int(op.RBS.IndicatorLevel))
	s.log.Debug("rbs snapshot published",
		zap.String("operator_id", op.ID),
		zap.String("category_key", string(op.RBS.CategoryKey)),
		zap.Int("cycle_months", op.RBS.SuggestedCycleMonths),
		zap.Float64("performance_score", op.RBS.PerformanceScore),
	)
}
