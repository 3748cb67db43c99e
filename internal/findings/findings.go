// Package findings manages the lifecycle of surveillance findings: target
// dates by category, the Open -> Completed transition and the explicit
// re-open override.
package findings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

var (
	ErrAlreadyCompleted = errors.New("finding already completed")
	ErrNotCompleted     = errors.New("finding is not completed")
)

// Policy holds the corrective action window per finding category.
type Policy struct {
	TargetDays map[domain.FindingCategoryLevel]int
}

func DefaultPolicy() Policy {
	return Policy{TargetDays: map[domain.FindingCategoryLevel]int{
		domain.FindingLevel1: 15,
		domain.FindingLevel2: 30,
		domain.FindingLevel3: 60,
	}}
}

func (p Policy) Validate() error {
	for _, c := range domain.FindingCategoryLevels {
		days, ok := p.TargetDays[c]
		if !ok {
			return &rbs.ConfigurationError{Table: "findings", Reason: fmt.Sprintf("no target window for %s", c)}
		}
		if days <= 0 {
			return &rbs.ConfigurationError{Table: "findings", Reason: fmt.Sprintf("target window for %s must be positive", c)}
		}
	}
	return nil
}

type Manager struct {
	policy Policy
	now    func() time.Time
	newID  func() string
}

// NewManager validates policy. A nil clock defaults to time.Now.
func NewManager(policy Policy, now func() time.Time) (*Manager, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	days := make(map[domain.FindingCategoryLevel]int, len(policy.TargetDays))
	for k, v := range policy.TargetDays {
		days[k] = v
	}
	return &Manager{
		policy: Policy{TargetDays: days},
		now:    now,
		newID:  uuid.NewString,
	}, nil
}

// TargetDate is the UTC calendar date of dateAdded plus the category's
// window in days. The time of day is dropped.
func (m *Manager) TargetDate(dateAdded time.Time, category domain.FindingCategoryLevel) (time.Time, error) {
	if dateAdded.IsZero() {
		return time.Time{}, &rbs.InvalidInputError{Field: "dateAdded", Reason: "required"}
	}
	days, ok := m.policy.TargetDays[category]
	if !ok {
		return time.Time{}, &rbs.InvalidInputError{Field: "findingCategory", Reason: fmt.Sprintf("unknown category %d", int(category))}
	}
	return utcDate(dateAdded).AddDate(0, 0, days), nil
}

// NewFinding is what an inspector records. A zero DateAdded means today.
type NewFinding struct {
	DateAdded            time.Time
	PredefinedAreaID     string
	AreaCategory         domain.SurveillanceLogCategory
	ItemNumber           string
	AreaDescription      string
	Finding              string
	Category             domain.FindingCategoryLevel
	RootCauseAnalysis    string
	CorrectiveActionPlan string
	RiskAssessment       string
	CorrectiveAction     string
}

// Open builds a new open finding with its target completion date. A
// predefined area fills in the item number and description; an explicit
// area category must agree with it.
func (m *Manager) Open(in NewFinding) (domain.SurveillanceFinding, error) {
	if strings.TrimSpace(in.Finding) == "" {
		return domain.SurveillanceFinding{}, &rbs.InvalidInputError{Field: "finding", Reason: "required"}
	}
	if !in.Category.IsValid() {
		return domain.SurveillanceFinding{}, &rbs.InvalidInputError{Field: "findingCategory", Reason: fmt.Sprintf("unknown category %d", int(in.Category))}
	}
	if in.AreaCategory != "" && !in.AreaCategory.IsValid() {
		return domain.SurveillanceFinding{}, &rbs.InvalidInputError{Field: "surveillanceLogCategoryId", Reason: fmt.Sprintf("unknown area category %q", in.AreaCategory)}
	}

	f := domain.SurveillanceFinding{
		ID:                   m.newID(),
		DateAdded:            in.DateAdded,
		AreaCategory:         in.AreaCategory,
		PredefinedAreaID:     in.PredefinedAreaID,
		ItemNumber:           in.ItemNumber,
		AreaDescription:      in.AreaDescription,
		Finding:              in.Finding,
		Category:             in.Category,
		RootCauseAnalysis:    in.RootCauseAnalysis,
		CorrectiveActionPlan: in.CorrectiveActionPlan,
		RiskAssessment:       in.RiskAssessment,
		CorrectiveAction:     in.CorrectiveAction,
	}
	if f.DateAdded.IsZero() {
		f.DateAdded = m.today()
	}

	if in.PredefinedAreaID != "" {
		area, ok := domain.LookupArea(in.PredefinedAreaID)
		if !ok {
			return domain.SurveillanceFinding{}, &rbs.InvalidInputError{Field: "predefinedAreaId", Reason: fmt.Sprintf("unknown area %q", in.PredefinedAreaID)}
		}
		if in.AreaCategory != "" && in.AreaCategory != area.Category {
			return domain.SurveillanceFinding{}, &rbs.InvalidInputError{Field: "surveillanceLogCategoryId", Reason: fmt.Sprintf("area %s belongs to %s", area.ID, area.Category)}
		}
		f.AreaCategory = area.Category
		if f.ItemNumber == "" {
			f.ItemNumber = area.ItemNumber
		}
		if f.AreaDescription == "" {
			f.AreaDescription = area.AreaDescription
		}
	}

	target, err := m.TargetDate(f.DateAdded, f.Category)
	if err != nil {
		return domain.SurveillanceFinding{}, err
	}
	f.TargetCompletionDate = target
	return f, nil
}

// Complete moves an open finding to Completed. A zero at means now.
func (m *Manager) Complete(f *domain.SurveillanceFinding, at time.Time) error {
	if f.IsCompleted {
		return fmt.Errorf("complete %s: %w", f.ID, ErrAlreadyCompleted)
	}
	if at.IsZero() {
		at = m.now()
	}
	if at.Before(f.DateAdded) {
		return &rbs.InvalidInputError{Field: "actualCompletionDate", Reason: "before the finding was added"}
	}
	f.IsCompleted = true
	f.ActualCompletionDate = &at
	return nil
}

// Reopen clears the completion of a finding. It is an administrative override
// and is never applied implicitly.
func (m *Manager) Reopen(f *domain.SurveillanceFinding) error {
	if !f.IsCompleted {
		return fmt.Errorf("reopen %s: %w", f.ID, ErrNotCompleted)
	}
	f.IsCompleted = false
	f.ActualCompletionDate = nil
	return nil
}

// IsOverdue reports whether an open finding is past its target date.
func (m *Manager) IsOverdue(f domain.SurveillanceFinding) bool {
	return !f.IsCompleted && m.today().After(f.TargetCompletionDate)
}

// Overdue filters the open findings past their target date.
func (m *Manager) Overdue(fs []domain.SurveillanceFinding) []domain.SurveillanceFinding {
	var out []domain.SurveillanceFinding
	for _, f := range fs {
		if m.IsOverdue(f) {
			out = append(out, f)
		}
	}
	return out
}

func (m *Manager) today() time.Time {
	return utcDate(m.now())
}

func utcDate(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
