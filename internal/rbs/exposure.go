package rbs

import (
	"math"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
)

// maxFactorPoints is the top of the 1..5 point scale every complexity factor
// is reduced to.
const maxFactorPoints = 5

// ExposureScore reduces the complexity factors to a weighted mean of factor
// points, in [1, 5].
func (e *Engine) ExposureScore(f domain.ComplexityFactors) (float64, error) {
	if err := validateComplexity(f); err != nil {
		return 0, err
	}
	c := e.tables.Complexity
	type term struct {
		band  FactorBand
		value float64
	}
	terms := []term{
		{c.AnnualFlights, float64(f.AnnualFlightCount)},
		{c.Employees, float64(f.NumEmployees)},
		{c.Aircraft, float64(f.NumAircraft)},
		{c.AircraftModels, float64(f.NumAircraftModels)},
		{c.Destinations, float64(f.NumDestinations)},
		{c.FleetAge, f.AvgFleetAge},
		{c.DomesticBases, float64(f.NumDomesticBases)},
	}

	var sum, weights float64
	for _, t := range terms {
		sum += t.band.Weight * factorPoints(t.band.Bounds, t.value)
		weights += t.band.Weight
	}
	intl := c.InternationalNo
	if f.HasInternationalOps {
		intl = c.InternationalYes
	}
	sum += c.InternationalWeight * intl
	weights += c.InternationalWeight

	return sum / weights, nil
}

func factorPoints(bounds []float64, v float64) float64 {
	points := 1.0
	for _, b := range bounds {
		if v > b {
			points++
		}
	}
	return points
}

// ClassifyExposure maps an exposure score onto A..E. A score equal to a band
// bound belongs to that band.
func (e *Engine) ClassifyExposure(score float64) (domain.ExposureLevel, error) {
	if math.IsNaN(score) {
		return "", invalid("exposureScore", "NaN")
	}
	for _, b := range e.tables.Exposure {
		if score <= b.Max {
			return b.Level, nil
		}
	}
	// unreachable with validated tables: the last band is unbounded
	return "", misconfigured("exposure", "no band for score %v", score)
}

func validateComplexity(f domain.ComplexityFactors) error {
	if err := nonNegativeCounts(
		count{"complexityFactors.annualFlightCount", f.AnnualFlightCount},
		count{"complexityFactors.numEmployees", f.NumEmployees},
		count{"complexityFactors.numAircraft", f.NumAircraft},
		count{"complexityFactors.numAircraftModels", f.NumAircraftModels},
		count{"complexityFactors.numDestinations", f.NumDestinations},
		count{"complexityFactors.numDomesticBases", f.NumDomesticBases},
	); err != nil {
		return err
	}
	if f.AvgFleetAge < 0 || math.IsNaN(f.AvgFleetAge) || math.IsInf(f.AvgFleetAge, 0) {
		return invalid("complexityFactors.avgFleetAge", "must be a finite non-negative number, got %v", f.AvgFleetAge)
	}
	if f.NumAircraftModels > f.NumAircraft && f.NumAircraft > 0 {
		return invalid("complexityFactors.numAircraftModels", "cannot exceed numAircraft (%d > %d)", f.NumAircraftModels, f.NumAircraft)
	}
	return nil
}
