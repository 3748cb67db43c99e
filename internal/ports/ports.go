package ports

import (
	"context"
	"time"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
)

// NewOperator registers an operator. Nil Inputs means domain.DefaultInputs.
type NewOperator struct {
	Name                       string
	AOCNumber                  string
	Category                   domain.OperatorCategory
	HadFatalAccidentLast3Years bool
	Inputs                     *domain.Inputs
}

// Operators manages operator records and keeps their RBS snapshot current.
type Operators interface {
	Create(ctx context.Context, in NewOperator) (domain.Operator, error)
	Get(ctx context.Context, id string) (domain.Operator, error)
	List(ctx context.Context) ([]domain.Operator, error)
	UpdateInputs(ctx context.Context, id string, in domain.Inputs, effective *time.Time) (domain.Operator, error)
	Recompute(ctx context.Context, id string) (domain.Operator, error)
	AddFinding(ctx context.Context, id string, in findings.NewFinding) (domain.SurveillanceFinding, error)
	CompleteFinding(ctx context.Context, id, findingID string, at time.Time) (domain.SurveillanceFinding, error)
	ReopenFinding(ctx context.Context, id, findingID string) (domain.SurveillanceFinding, error)
	UpdateSurveillanceLog(ctx context.Context, id, areaID string, status domain.SurveillanceLogStatus, notes string) (domain.SurveillanceLogItem, error)
	History(ctx context.Context, id string, from, to time.Time) ([]domain.RiskIndicatorHistoryEntry, error)
}

// Recomputes enqueues and tracks recompute jobs.
type Recomputes interface {
	Enqueue(ctx context.Context, operatorID string) (jobID string, err error)
	EnqueueAll(ctx context.Context) (jobIDs []string, err error)
	Status(ctx context.Context, jobID string) (RecomputeJob, error)
}

// Profile is the latest risk posture of an operator.
type Profile struct {
	OperatorID      string                            `json:"operatorId"`
	Name            string                            `json:"name"`
	AOCNumber       string                            `json:"aocNumber"`
	RBS             domain.RbsResult                  `json:"rbs"`
	Legacy          domain.LegacyRisk                 `json:"legacy"`
	Economic        *float64                          `json:"economicIndicatorScore,omitempty"`
	OpenFindings    int                               `json:"openFindings"`
	OverdueFindings []domain.SurveillanceFinding      `json:"overdueFindings"`
	Latest          *domain.RiskIndicatorHistoryEntry `json:"latestHistoryEntry,omitempty"`
	LastUpdated     time.Time                         `json:"lastUpdated"`
}

// Profiles provides latest profiles for operators.
type Profiles interface {
	GetLatest(ctx context.Context, operatorID string) (Profile, error)
}
