// Package rbs implements Risk-Based Surveillance scoring: complexity to
// exposure level, compliance/deviation/improvement to the performance score
// F(P), F(P) to the risk indicator level, and the (indicator, exposure) pair
// to a suggested surveillance cycle. A legacy weighted score is kept alongside
// for compatibility.
//
// The engine is pure: no I/O, no clock, no shared mutable state. All weights,
// thresholds and matrix cells are injected as Tables and validated once in
// NewEngine.
package rbs

import (
	"fmt"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

type Engine struct {
	tables Tables
}

// NewEngine validates t and returns an engine holding a private copy of it.
// Any error matches ErrConfiguration.
func NewEngine(t Tables) (*Engine, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Engine{tables: t.clone()}, nil
}

// MustNewEngine is NewEngine for tables known to be valid, e.g. DefaultTables.
func MustNewEngine(t Tables) *Engine {
	e, err := NewEngine(t)
	if err != nil {
		panic(err)
	}
	return e
}

// Tables returns a copy of the tables in use.
func (e *Engine) Tables() Tables { return e.tables.clone() }

// Inputs are the raw fields one RBS computation reads.
type Inputs struct {
	Complexity  domain.ComplexityFactors `json:"complexityFactors" yaml:"complexityFactors"`
	Compliance  domain.ComplianceData    `json:"complianceData" yaml:"complianceData"`
	Deviation   domain.DeviationData     `json:"deviationData" yaml:"deviationData"`
	Improvement domain.ImprovementData   `json:"improvementData" yaml:"improvementData"`
}

// ComputeRBS derives every RBS output field from in. It either returns a
// complete, mutually consistent result or an error and no result.
func (e *Engine) ComputeRBS(in Inputs) (domain.RbsResult, error) {
	exposureScore, err := e.ExposureScore(in.Complexity)
	if err != nil {
		return domain.RbsResult{}, err
	}
	exposure, err := e.ClassifyExposure(exposureScore)
	if err != nil {
		return domain.RbsResult{}, err
	}

	c, err := e.ComplianceScore(in.Compliance)
	if err != nil {
		return domain.RbsResult{}, err
	}
	d, err := e.DeviationScore(in.Deviation)
	if err != nil {
		return domain.RbsResult{}, err
	}
	i, err := e.ImprovementScore(in.Improvement)
	if err != nil {
		return domain.RbsResult{}, err
	}
	fp := e.PerformanceScore(c, d, i)

	level, label, err := e.ClassifyIndicator(fp)
	if err != nil {
		return domain.RbsResult{}, err
	}
	cell, err := e.Cell(level, exposure)
	if err != nil {
		return domain.RbsResult{}, fmt.Errorf("resolve surveillance cycle: %w", err)
	}

	return domain.RbsResult{
		ExposureScore:        exposureScore,
		ExposureLevel:        exposure,
		ComplianceScore:      c,
		DeviationScore:       d,
		ImprovementScore:     i,
		PerformanceScore:     fp,
		IndicatorLevel:       level,
		IndicatorLabel:       label,
		CategoryKey:          cell.Key,
		SuggestedCycleMonths: cell.Months,
		Zone:                 cell.Zone,
	}, nil
}

// InputsOf collects the RBS inputs of an operator, scoring open findings in
// place of the stored compliance counts when there are any.
func InputsOf(op *domain.Operator) Inputs {
	return Inputs{
		Complexity:  op.Inputs.Complexity,
		Compliance:  op.EffectiveCompliance(),
		Deviation:   op.Inputs.Deviation,
		Improvement: op.Inputs.Improvement,
	}
}
