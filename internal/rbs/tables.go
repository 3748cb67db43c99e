package rbs

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

// Tables carries every weight, threshold and lookup cell the engine uses.
// An engine copies its tables at construction; nothing mutates them after.
type Tables struct {
	Performance   PerformanceWeights `yaml:"performance"`
	Compliance    SeverityWeights    `yaml:"compliance"`
	Deviation     SeverityWeights    `yaml:"deviation"`
	Improvement   ImprovementWeights `yaml:"improvement"`
	Normalization Normalization      `yaml:"improvement_normalization"`

	Indicator []IndicatorThreshold `yaml:"indicator"`

	Complexity ComplexityTable `yaml:"complexity"`
	Exposure   []ExposureBand  `yaml:"exposure"`

	Matrix map[domain.CategoryKey]MatrixCell `yaml:"matrix"`

	Legacy LegacyTable `yaml:"legacy"`
}

// PerformanceWeights are wc, wd and wi in F(P) = wc*C - wd*D + wi*I.
type PerformanceWeights struct {
	Compliance  float64 `yaml:"compliance"`
	Deviation   float64 `yaml:"deviation"`
	Improvement float64 `yaml:"improvement"`
}

// SeverityWeights weighs three mutually exclusive severity buckets, most
// severe first (ncp/ncf/nad or accident/serious incident/incident).
type SeverityWeights struct {
	High   float64 `yaml:"high"`
	Medium float64 `yaml:"medium"`
	Low    float64 `yaml:"low"`
}

// ImprovementWeights weighs the corrective action maturity ladder.
type ImprovementWeights struct {
	RootCause        float64 `yaml:"root_cause"`
	HazardIdentified float64 `yaml:"hazard_identified"`
	RiskAssessed     float64 `yaml:"risk_assessed"`
	RiskMitigated    float64 `yaml:"risk_mitigated"`
}

// IndicatorThreshold maps every F(P) <= Max (and above the previous Max) to
// Level.
type IndicatorThreshold struct {
	Max   float64               `yaml:"max"`
	Level domain.IndicatorLevel `yaml:"level"`
	Label string                `yaml:"label"`
}

// FactorBand turns one complexity factor into 1..len(Bounds)+1 points: the
// value scores one plus the number of bounds it exceeds.
type FactorBand struct {
	Weight float64   `yaml:"weight"`
	Bounds []float64 `yaml:"bounds"`
}

type ComplexityTable struct {
	AnnualFlights  FactorBand `yaml:"annual_flights"`
	Employees      FactorBand `yaml:"employees"`
	Aircraft       FactorBand `yaml:"aircraft"`
	AircraftModels FactorBand `yaml:"aircraft_models"`
	Destinations   FactorBand `yaml:"destinations"`
	FleetAge       FactorBand `yaml:"fleet_age"`
	DomesticBases  FactorBand `yaml:"domestic_bases"`

	InternationalWeight float64 `yaml:"international_weight"`
	InternationalYes    float64 `yaml:"international_yes"`
	InternationalNo     float64 `yaml:"international_no"`
}

// ExposureBand maps every exposure score <= Max (and above the previous Max)
// to Level.
type ExposureBand struct {
	Max   float64              `yaml:"max"`
	Level domain.ExposureLevel `yaml:"level"`
}

type MatrixCell struct {
	Months int             `yaml:"months" json:"months"`
	Zone   domain.RiskZone `yaml:"zone" json:"zone"`
}

// LegacyTable drives the pre-RBS weighted score.
type LegacyTable struct {
	FrequencyWeight   int                          `yaml:"frequency_weight"`
	EnvironmentWeight int                          `yaml:"environment_weight"`
	OccurrenceWeight  int                          `yaml:"occurrence_weight"`
	Severity          map[domain.SeverityLevel]int `yaml:"severity"`
	Levels            []LegacyBand                 `yaml:"levels"`
}

// LegacyBand is an inclusive [Min, Max] score range.
type LegacyBand struct {
	Level domain.RiskLevel `yaml:"level"`
	Min   float64          `yaml:"min"`
	Max   float64          `yaml:"max"`
}

// DefaultTables returns the published RBS tables.
func DefaultTables() Tables {
	inf := math.Inf(1)
	return Tables{
		Performance: PerformanceWeights{Compliance: 0.75, Deviation: 1.00, Improvement: 0.25},
		Compliance:  SeverityWeights{High: 0.50, Medium: 0.35, Low: 0.15},
		Deviation:   SeverityWeights{High: 0.50, Medium: 0.35, Low: 0.15},
		Improvement: ImprovementWeights{RootCause: 0.25, HazardIdentified: 0.50, RiskAssessed: 0.75, RiskMitigated: 1.00},

		Normalization: NormalizeIndependent,

		Indicator: []IndicatorThreshold{
			{Max: 35, Level: domain.IndicatorVeryHigh, Label: "Very High"},
			{Max: 60, Level: domain.IndicatorHigh, Label: "High"},
			{Max: 75, Level: domain.IndicatorMedium, Label: "Medium"},
			{Max: 85, Level: domain.IndicatorLow, Label: "Low"},
			{Max: inf, Level: domain.IndicatorVeryLow, Label: "Very Low"},
		},

		Complexity: ComplexityTable{
			AnnualFlights:  FactorBand{Weight: 1, Bounds: []float64{1000, 5000, 20000, 50000}},
			Employees:      FactorBand{Weight: 1, Bounds: []float64{50, 200, 1000, 5000}},
			Aircraft:       FactorBand{Weight: 1, Bounds: []float64{5, 15, 40, 100}},
			AircraftModels: FactorBand{Weight: 1, Bounds: []float64{1, 2, 4, 6}},
			Destinations:   FactorBand{Weight: 1, Bounds: []float64{5, 20, 50, 100}},
			FleetAge:       FactorBand{Weight: 1, Bounds: []float64{5, 10, 15, 20}},
			DomesticBases:  FactorBand{Weight: 1, Bounds: []float64{1, 3, 5, 10}},

			InternationalWeight: 1,
			InternationalYes:    5,
			InternationalNo:     1,
		},
		Exposure: []ExposureBand{
			{Max: 1.8, Level: domain.ExposureA},
			{Max: 2.6, Level: domain.ExposureB},
			{Max: 3.4, Level: domain.ExposureC},
			{Max: 4.2, Level: domain.ExposureD},
			{Max: inf, Level: domain.ExposureE},
		},

		Matrix: map[domain.CategoryKey]MatrixCell{
			"1A": {18, domain.ZoneLow}, "1B": {18, domain.ZoneLow}, "1C": {12, domain.ZoneLow}, "1D": {12, domain.ZoneLow}, "1E": {12, domain.ZoneMedium},
			"2A": {18, domain.ZoneLow}, "2B": {12, domain.ZoneLow}, "2C": {12, domain.ZoneMedium}, "2D": {6, domain.ZoneMedium}, "2E": {6, domain.ZoneMedium},
			"3A": {12, domain.ZoneLow}, "3B": {12, domain.ZoneMedium}, "3C": {6, domain.ZoneMedium}, "3D": {6, domain.ZoneMedium}, "3E": {6, domain.ZoneHigh},
			"4A": {12, domain.ZoneMedium}, "4B": {6, domain.ZoneMedium}, "4C": {6, domain.ZoneMedium}, "4D": {6, domain.ZoneHigh}, "4E": {6, domain.ZoneHigh},
			"5A": {6, domain.ZoneMedium}, "5B": {6, domain.ZoneMedium}, "5C": {6, domain.ZoneHigh}, "5D": {6, domain.ZoneHigh}, "5E": {6, domain.ZoneHigh},
		},

		Legacy: LegacyTable{
			FrequencyWeight:   2,
			EnvironmentWeight: 2,
			OccurrenceWeight:  1,
			Severity: map[domain.SeverityLevel]int{
				domain.SeverityLow:      1,
				domain.SeverityMedium:   3,
				domain.SeverityHigh:     5,
				domain.SeverityCritical: 10,
			},
			Levels: []LegacyBand{
				{Level: domain.RiskLow, Min: 0, Max: 10},
				{Level: domain.RiskMedium, Min: 11, Max: 25},
				{Level: domain.RiskHigh, Min: 26, Max: 40},
				{Level: domain.RiskCritical, Min: 41, Max: inf},
			},
		},
	}
}

// LoadTables reads a YAML override file on top of DefaultTables. Maps are
// merged key by key, lists replace the defaults wholesale.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tables: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("parse tables %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate reports every defect found; each one matches ErrConfiguration.
func (t Tables) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	add(nonNegative("performance", t.Performance.Compliance, t.Performance.Deviation, t.Performance.Improvement))
	add(nonNegative("compliance", t.Compliance.High, t.Compliance.Medium, t.Compliance.Low))
	add(nonNegative("deviation", t.Deviation.High, t.Deviation.Medium, t.Deviation.Low))

	iw := t.Improvement
	if !(0 < iw.RootCause && iw.RootCause < iw.HazardIdentified && iw.HazardIdentified < iw.RiskAssessed && iw.RiskAssessed < iw.RiskMitigated) {
		add(misconfigured("improvement", "weights must be positive and strictly increasing with maturity"))
	}
	if _, ok := normalizers[t.Normalization]; !ok {
		add(misconfigured("improvement_normalization", "unknown normalization %q", t.Normalization))
	}

	add(t.validateIndicator())
	add(t.validateComplexity())
	add(t.validateExposure())
	add(t.validateMatrix())
	add(t.validateLegacy())

	return errors.Join(errs...)
}

func nonNegative(table string, vals ...float64) error {
	for _, v := range vals {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return misconfigured(table, "weight %v must be a finite non-negative number", v)
		}
	}
	return nil
}

func (t Tables) validateIndicator() error {
	th := t.Indicator
	if len(th) != len(domain.IndicatorLevels) {
		return misconfigured("indicator", "want %d thresholds, got %d", len(domain.IndicatorLevels), len(th))
	}
	seen := map[domain.IndicatorLevel]bool{}
	for i, row := range th {
		if !row.Level.IsValid() {
			return misconfigured("indicator", "row %d: invalid level %d", i, row.Level)
		}
		if seen[row.Level] {
			return misconfigured("indicator", "level %d appears twice", row.Level)
		}
		seen[row.Level] = true
		if math.IsNaN(row.Max) {
			return misconfigured("indicator", "row %d: max is NaN", i)
		}
		if i > 0 {
			if row.Max <= th[i-1].Max {
				return misconfigured("indicator", "row %d: bounds must be strictly ascending", i)
			}
			if row.Level > th[i-1].Level {
				return misconfigured("indicator", "row %d: level must not rise as the score rises", i)
			}
		}
	}
	if !math.IsInf(th[len(th)-1].Max, 1) {
		return misconfigured("indicator", "last threshold must be unbounded")
	}
	return nil
}

func (t Tables) validateComplexity() error {
	c := t.Complexity
	bands := map[string]FactorBand{
		"annual_flights":  c.AnnualFlights,
		"employees":       c.Employees,
		"aircraft":        c.Aircraft,
		"aircraft_models": c.AircraftModels,
		"destinations":    c.Destinations,
		"fleet_age":       c.FleetAge,
		"domestic_bases":  c.DomesticBases,
	}
	total := c.InternationalWeight
	if c.InternationalWeight < 0 {
		return misconfigured("complexity", "international_weight must be non-negative")
	}
	for name, b := range bands {
		if b.Weight < 0 {
			return misconfigured("complexity", "%s: weight must be non-negative", name)
		}
		total += b.Weight
		if len(b.Bounds) != maxFactorPoints-1 {
			return misconfigured("complexity", "%s: want %d bounds, got %d", name, maxFactorPoints-1, len(b.Bounds))
		}
		for i := 1; i < len(b.Bounds); i++ {
			if b.Bounds[i] <= b.Bounds[i-1] {
				return misconfigured("complexity", "%s: bounds must be strictly ascending", name)
			}
		}
	}
	if total <= 0 {
		return misconfigured("complexity", "weights sum to zero")
	}
	for _, p := range []float64{c.InternationalYes, c.InternationalNo} {
		if p < 1 || p > maxFactorPoints {
			return misconfigured("complexity", "international points %v outside 1..%d", p, maxFactorPoints)
		}
	}
	if c.InternationalYes < c.InternationalNo {
		return misconfigured("complexity", "international operations must not lower exposure")
	}
	return nil
}

func (t Tables) validateExposure() error {
	bands := t.Exposure
	if len(bands) != len(domain.ExposureLevels) {
		return misconfigured("exposure", "want %d bands, got %d", len(domain.ExposureLevels), len(bands))
	}
	for i, b := range bands {
		if b.Level != domain.ExposureLevels[i] {
			return misconfigured("exposure", "band %d: want level %s, got %q", i, domain.ExposureLevels[i], b.Level)
		}
		if math.IsNaN(b.Max) {
			return misconfigured("exposure", "band %d: max is NaN", i)
		}
		if i > 0 && b.Max <= bands[i-1].Max {
			return misconfigured("exposure", "band %d: bounds must be strictly ascending", i)
		}
	}
	if !math.IsInf(bands[len(bands)-1].Max, 1) {
		return misconfigured("exposure", "last band must be unbounded")
	}
	return nil
}

func (t Tables) validateMatrix() error {
	want := len(domain.IndicatorLevels) * len(domain.ExposureLevels)
	if len(t.Matrix) != want {
		return misconfigured("matrix", "want %d cells, got %d", want, len(t.Matrix))
	}
	for key := range t.Matrix {
		if _, _, err := ParseCategoryKey(string(key)); err != nil {
			return misconfigured("matrix", "unexpected key %q", key)
		}
	}
	for _, lvl := range domain.IndicatorLevels {
		for _, exp := range domain.ExposureLevels {
			key := CategoryKeyOf(lvl, exp)
			cell, ok := t.Matrix[key]
			if !ok {
				return misconfigured("matrix", "missing cell %s", key)
			}
			if cell.Months <= 0 {
				return misconfigured("matrix", "cell %s: months must be positive", key)
			}
			if !cell.Zone.IsValid() {
				return misconfigured("matrix", "cell %s: invalid zone %q", key, cell.Zone)
			}
			// A worse indicator or a worse exposure never lengthens the cycle.
			if lvl > domain.IndicatorVeryLow {
				prev := t.Matrix[CategoryKeyOf(lvl-1, exp)]
				if cell.Months > prev.Months {
					return misconfigured("matrix", "cell %s lengthens the cycle of %s", key, CategoryKeyOf(lvl-1, exp))
				}
			}
			if r := exp.Rank(); r > 1 {
				prevKey := CategoryKeyOf(lvl, domain.ExposureLevels[r-2])
				if cell.Months > t.Matrix[prevKey].Months {
					return misconfigured("matrix", "cell %s lengthens the cycle of %s", key, prevKey)
				}
			}
		}
	}
	return nil
}

func (t Tables) validateLegacy() error {
	l := t.Legacy
	if l.FrequencyWeight < 0 || l.EnvironmentWeight < 0 || l.OccurrenceWeight < 0 {
		return misconfigured("legacy", "weights must be non-negative")
	}
	for _, s := range domain.SeverityLevels {
		w, ok := l.Severity[s]
		if !ok {
			return misconfigured("legacy", "missing severity weight for %s", s)
		}
		if w < 0 {
			return misconfigured("legacy", "severity weight for %s must be non-negative", s)
		}
	}
	if len(l.Levels) == 0 {
		return misconfigured("legacy", "no levels")
	}
	if l.Levels[0].Min != 0 {
		return misconfigured("legacy", "first level must start at 0")
	}
	for i, b := range l.Levels {
		if !b.Level.IsValid() {
			return misconfigured("legacy", "band %d: invalid level %q", i, b.Level)
		}
		if b.Max < b.Min {
			return misconfigured("legacy", "band %d: max below min", i)
		}
		if i > 0 && b.Min != l.Levels[i-1].Max+1 {
			return misconfigured("legacy", "band %d: ranges must be contiguous", i)
		}
	}
	if !math.IsInf(l.Levels[len(l.Levels)-1].Max, 1) {
		return misconfigured("legacy", "last level must be unbounded")
	}
	return nil
}

func (t Tables) clone() Tables {
	out := t
	out.Indicator = append([]IndicatorThreshold(nil), t.Indicator...)
	out.Exposure = append([]ExposureBand(nil), t.Exposure...)
	c := &out.Complexity
	for _, b := range []*FactorBand{&c.AnnualFlights, &c.Employees, &c.Aircraft, &c.AircraftModels, &c.Destinations, &c.FleetAge, &c.DomesticBases} {
		b.Bounds = append([]float64(nil), b.Bounds...)
	}
	out.Matrix = make(map[domain.CategoryKey]MatrixCell, len(t.Matrix))
	for k, v := range t.Matrix {
		out.Matrix[k] = v
	}
	out.Legacy.Severity = make(map[domain.SeverityLevel]int, len(t.Legacy.Severity))
	for k, v := range t.Legacy.Severity {
		out.Legacy.Severity[k] = v
	}
	out.Legacy.Levels = append([]LegacyBand(nil), t.Legacy.Levels...)
	return out
}
