package domain

import "fmt"

// ExposureLevel bands operational complexity, A (very low) to E (very high).
type ExposureLevel string

const (
	ExposureA ExposureLevel = "A"
	ExposureB ExposureLevel = "B"
	ExposureC ExposureLevel = "C"
	ExposureD ExposureLevel = "D"
	ExposureE ExposureLevel = "E"
)

// ExposureLevels lists every exposure level in ascending order.
var ExposureLevels = []ExposureLevel{ExposureA, ExposureB, ExposureC, ExposureD, ExposureE}

func (e ExposureLevel) String() string { return string(e) }

func (e ExposureLevel) IsValid() bool {
	switch e {
	case ExposureA, ExposureB, ExposureC, ExposureD, ExposureE:
		return true
	}
	return false
}

// Rank returns 1 for A through 5 for E, and 0 for an invalid level.
func (e ExposureLevel) Rank() int {
	switch e {
	case ExposureA:
		return 1
	case ExposureB:
		return 2
	case ExposureC:
		return 3
	case ExposureD:
		return 4
	case ExposureE:
		return 5
	}
	return 0
}

func (e ExposureLevel) Label() string {
	switch e {
	case ExposureA:
		return "Very Low"
	case ExposureB:
		return "Low"
	case ExposureC:
		return "Medium"
	case ExposureD:
		return "High"
	case ExposureE:
		return "Very High"
	}
	return ""
}

// IndicatorLevel is the Risk Indicator Level (IDR). Higher is worse.
type IndicatorLevel int

const (
	IndicatorVeryLow  IndicatorLevel = 1
	IndicatorLow      IndicatorLevel = 2
	IndicatorMedium   IndicatorLevel = 3
	IndicatorHigh     IndicatorLevel = 4
	IndicatorVeryHigh IndicatorLevel = 5
)

// IndicatorLevels lists every indicator level in ascending order.
var IndicatorLevels = []IndicatorLevel{IndicatorVeryLow, IndicatorLow, IndicatorMedium, IndicatorHigh, IndicatorVeryHigh}

func (l IndicatorLevel) IsValid() bool { return l >= IndicatorVeryLow && l <= IndicatorVeryHigh }

func (l IndicatorLevel) String() string { return fmt.Sprintf("%d", int(l)) }

// CategoryKey is "{indicatorLevel}{exposureLevel}", e.g. "3C". It is the only
// key into the surveillance-cycle matrix.
type CategoryKey string

// RiskZone is the band a matrix cell falls into.
type RiskZone string

const (
	ZoneLow    RiskZone = "low"
	ZoneMedium RiskZone = "medium"
	ZoneHigh   RiskZone = "high"
)

func (z RiskZone) IsValid() bool {
	switch z {
	case ZoneLow, ZoneMedium, ZoneHigh:
		return true
	}
	return false
}

// FindingCategoryLevel is the severity bucket of a surveillance finding.
type FindingCategoryLevel int

const (
	FindingLevel1 FindingCategoryLevel = 1 // non-compliance
	FindingLevel2 FindingCategoryLevel = 2 // non-conformance
	FindingLevel3 FindingCategoryLevel = 3 // non-adherence
)

var FindingCategoryLevels = []FindingCategoryLevel{FindingLevel1, FindingLevel2, FindingLevel3}

func (c FindingCategoryLevel) IsValid() bool {
	switch c {
	case FindingLevel1, FindingLevel2, FindingLevel3:
		return true
	}
	return false
}

func (c FindingCategoryLevel) String() string {
	switch c {
	case FindingLevel1:
		return "Level 1 (Non-Compliance)"
	case FindingLevel2:
		return "Level 2 (Non-Conformance)"
	case FindingLevel3:
		return "Level 3 (Non-Adherence)"
	}
	return fmt.Sprintf("FindingCategoryLevel(%d)", int(c))
}

// SurveillanceLogCategory is one of the four surveillance area tables.
type SurveillanceLogCategory string

const (
	AreaAirworthiness SurveillanceLogCategory = "airworthiness"
	AreaOperations    SurveillanceLogCategory = "operations"
	AreaSMS           SurveillanceLogCategory = "sms"
	AreaQMS           SurveillanceLogCategory = "qms"
)

func (c SurveillanceLogCategory) IsValid() bool {
	switch c {
	case AreaAirworthiness, AreaOperations, AreaSMS, AreaQMS:
		return true
	}
	return false
}

func (c SurveillanceLogCategory) Title() string {
	switch c {
	case AreaAirworthiness:
		return "Airworthiness Surveillance Area"
	case AreaOperations:
		return "Aircraft Operations Surveillance Area"
	case AreaSMS:
		return "Safety Management System (SMS) Surveillance"
	case AreaQMS:
		return "Quality Management System (QMS) Surveillance"
	}
	return string(c)
}

type SurveillanceLogStatus string

const (
	LogDone    SurveillanceLogStatus = "Done"
	LogNotDone SurveillanceLogStatus = "Not Done"
	LogOngoing SurveillanceLogStatus = "On Going"
)

func (s SurveillanceLogStatus) IsValid() bool {
	switch s {
	case LogDone, LogNotDone, LogOngoing:
		return true
	}
	return false
}

type OperatorCategory string

const (
	OperatorScheduled     OperatorCategory = "Scheduled Commercial Air Transport"
	OperatorNonScheduled  OperatorCategory = "Non-Scheduled Commercial Air Transport"
	OperatorGAComplex     OperatorCategory = "General Aviation - Complex"
	OperatorGANonComplex  OperatorCategory = "General Aviation - Non-Complex"
	OperatorCargo         OperatorCategory = "Cargo Operations"
	OperatorSpecialAerial OperatorCategory = "Special Operations (e.g., Aerial Work)"
)

// IsValid accepts the empty category; it is optional on an operator.
func (c OperatorCategory) IsValid() bool {
	switch c {
	case "", OperatorScheduled, OperatorNonScheduled, OperatorGAComplex,
		OperatorGANonComplex, OperatorCargo, OperatorSpecialAerial:
		return true
	}
	return false
}

// RiskLevel is the legacy four-level risk classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "Low"
	SeverityMedium   SeverityLevel = "Medium"
	SeverityHigh     SeverityLevel = "High"
	SeverityCritical SeverityLevel = "Critical"
)

var SeverityLevels = []SeverityLevel{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

func (s SeverityLevel) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type OccurrenceType string

const (
	OccurrenceAccident        OccurrenceType = "Accident"
	OccurrenceSeriousIncident OccurrenceType = "Serious Incident"
	OccurrenceIncident        OccurrenceType = "Incident"
	OccurrenceSDR             OccurrenceType = "Service Difficulty Report (SDR)"
	OccurrenceSafetyReport    OccurrenceType = "Safety Report (Internal/Voluntary)"
	OccurrenceOther           OccurrenceType = "Other Reportable Occurrence"
)

func (t OccurrenceType) IsValid() bool {
	switch t {
	case OccurrenceAccident, OccurrenceSeriousIncident, OccurrenceIncident,
		OccurrenceSDR, OccurrenceSafetyReport, OccurrenceOther:
		return true
	}
	return false
}
