package rbs

import (
	"fmt"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

// CategoryKeyOf builds the matrix key, e.g. (3, C) -> "3C".
func CategoryKeyOf(level domain.IndicatorLevel, exp domain.ExposureLevel) domain.CategoryKey {
	return domain.CategoryKey(fmt.Sprintf("%d%s", int(level), exp))
}

// ParseCategoryKey is the inverse of CategoryKeyOf. Only the 25 valid
// combinations parse.
func ParseCategoryKey(key string) (domain.IndicatorLevel, domain.ExposureLevel, error) {
	if len(key) != 2 {
		return 0, "", invalid("categoryKey", "%q is not of the form {1-5}{A-E}", key)
	}
	level := domain.IndicatorLevel(key[0] - '0')
	exp := domain.ExposureLevel(key[1:])
	if !level.IsValid() || !exp.IsValid() {
		return 0, "", invalid("categoryKey", "%q is not of the form {1-5}{A-E}", key)
	}
	return level, exp, nil
}

// MatrixEntry is one resolved matrix cell.
type MatrixEntry struct {
	Key            domain.CategoryKey    `json:"key"`
	IndicatorLevel domain.IndicatorLevel `json:"riskIndicatorLevel"`
	ExposureLevel  domain.ExposureLevel  `json:"exposureLevel"`
	Months         int                   `json:"months"`
	Zone           domain.RiskZone       `json:"zone"`
}

// Cell looks up the matrix cell for a (level, letter) pair.
func (e *Engine) Cell(level domain.IndicatorLevel, exp domain.ExposureLevel) (MatrixEntry, error) {
	if !level.IsValid() {
		return MatrixEntry{}, invalid("riskIndicatorLevel", "must be 1..5, got %d", level)
	}
	if !exp.IsValid() {
		return MatrixEntry{}, invalid("exposureLevel", "must be A..E, got %q", exp)
	}
	key := CategoryKeyOf(level, exp)
	cell, ok := e.tables.Matrix[key]
	if !ok {
		return MatrixEntry{}, &LookupMissError{Key: string(key)}
	}
	return MatrixEntry{Key: key, IndicatorLevel: level, ExposureLevel: exp, Months: cell.Months, Zone: cell.Zone}, nil
}

// ResolveSurveillanceCycle returns the suggested surveillance cycle in months.
func (e *Engine) ResolveSurveillanceCycle(level domain.IndicatorLevel, exp domain.ExposureLevel) (int, error) {
	c, err := e.Cell(level, exp)
	if err != nil {
		return 0, err
	}
	return c.Months, nil
}

// Matrix lists all cells, indicator level major, exposure level minor.
func (e *Engine) Matrix() []MatrixEntry {
	out := make([]MatrixEntry, 0, len(e.tables.Matrix))
	for _, lvl := range domain.IndicatorLevels {
		for _, exp := range domain.ExposureLevels {
			cell := e.tables.Matrix[CategoryKeyOf(lvl, exp)]
			out = append(out, MatrixEntry{
				Key:            CategoryKeyOf(lvl, exp),
				IndicatorLevel: lvl,
				ExposureLevel:  exp,
				Months:         cell.Months,
				Zone:           cell.Zone,
			})
		}
	}
	return out
}
