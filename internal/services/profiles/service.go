package profiles

import (
	"context"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

type Service struct {
	operators ports.OperatorRepository
	findings  *findings.Manager
}

func New(operators ports.OperatorRepository, fm *findings.Manager) *Service {
	return &Service{operators: operators, findings: fm}
}

// GetLatest summarises the current snapshot of an operator. The history
// entry reported is the newest dated one, not the last appended.
func (s *Service) GetLatest(ctx context.Context, operatorID string) (ports.Profile, error) {
	op, err := s.operators.Get(ctx, operatorID)
	if err != nil {
		return ports.Profile{}, err
	}
	_, _, _, open := op.OpenFindingCounts()
	prof := ports.Profile{
		OperatorID:      op.ID,
		Name:            op.Name,
		AOCNumber:       op.AOCNumber,
		RBS:             op.RBS,
		Legacy:          op.Legacy,
		Economic:        op.EconomicIndicatorScore,
		OpenFindings:    open,
		OverdueFindings: s.findings.Overdue(op.Findings),
		LastUpdated:     op.LastUpdated,
	}
	if prof.OverdueFindings == nil {
		prof.OverdueFindings = []domain.SurveillanceFinding{}
	}
	if latest, ok := op.History.LatestByDate(); ok {
		prof.Latest = &latest
	}
	return prof, nil
}
