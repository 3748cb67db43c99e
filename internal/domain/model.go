package domain

import "time"

// Core domain models shared by the engine, the services and the adapters.
// Transport DTOs live in internal/adapters/http; keep these decoupled.

type Operator struct {
	ID                         string           `json:"id"`
	Name                       string           `json:"name"`
	AOCNumber                  string           `json:"aocNumber"`
	Category                   OperatorCategory `json:"operatorCategory,omitempty"`
	HadFatalAccidentLast3Years bool             `json:"hadFatalAccidentLast3Years"`
	LastUpdated                time.Time        `json:"lastUpdated"`

	Inputs           Inputs                `json:"inputs"`
	Findings         []SurveillanceFinding `json:"surveillanceFindings"`
	SurveillanceLogs []SurveillanceLogItem `json:"surveillanceLogs"`

	RBS    RbsResult  `json:"rbs"`
	Legacy LegacyRisk `json:"legacy"`

	// EconomicIndicatorScore is the 0-5 economic indicator in effect at the
	// last recompute. Nil when neither a score nor factors were supplied.
	EconomicIndicatorScore *float64 `json:"economicIndicatorScore,omitempty"`

	History History `json:"riskIndicatorHistory"`
}

// Inputs groups every raw field the recompute reads.
type Inputs struct {
	Complexity  ComplexityFactors `json:"complexityFactors"`
	Compliance  ComplianceData    `json:"complianceData"`
	Deviation   DeviationData     `json:"deviationData"`
	Improvement ImprovementData   `json:"improvementData"`
	Legacy      LegacyRiskFactors `json:"legacyRiskFactors"`

	EconomicFactors        *EconomicFactors `json:"economicFactors,omitempty"`
	EconomicIndicatorScore *float64         `json:"economicIndicatorScore,omitempty"`
}

// DefaultInputs mirrors the defaults used when an operator is registered
// without any surveillance data yet.
func DefaultInputs() Inputs {
	return Inputs{
		Compliance: ComplianceData{TotalChecklistItems: DefaultTotalChecklistItems},
		Deviation:  DeviationData{TotalFlightCycles: DefaultTotalFlightCycles},
		Legacy:     LegacyRiskFactors{AircraftFrequency: 1, EnvironmentalComplexity: 1},
	}
}

const (
	DefaultTotalChecklistItems = 100
	DefaultTotalFlightCycles   = 1000
)

type ComplexityFactors struct {
	AnnualFlightCount   int     `json:"annualFlightCount" yaml:"annualFlightCount"`
	NumEmployees        int     `json:"numEmployees" yaml:"numEmployees"`
	NumAircraft         int     `json:"numAircraft" yaml:"numAircraft"`
	NumAircraftModels   int     `json:"numAircraftModels" yaml:"numAircraftModels"`
	NumDestinations     int     `json:"numDestinations" yaml:"numDestinations"`
	HasInternationalOps bool    `json:"hasInternationalOps" yaml:"hasInternationalOps"`
	AvgFleetAge         float64 `json:"avgFleetAge" yaml:"avgFleetAge"`
	NumDomesticBases    int     `json:"numDomesticBases" yaml:"numDomesticBases"`
}

// ComplianceData holds finding counts per severity bucket. The buckets are
// mutually exclusive.
type ComplianceData struct {
	NCP                 int `json:"ncp" yaml:"ncp"`
	NCF                 int `json:"ncf" yaml:"ncf"`
	NAD                 int `json:"nad" yaml:"nad"`
	TotalChecklistItems int `json:"totalChecklistItems" yaml:"totalChecklistItems"`
}

type DeviationData struct {
	AccidentCount        int `json:"accidentCount" yaml:"accidentCount"`
	SeriousIncidentCount int `json:"seriousIncidentCount" yaml:"seriousIncidentCount"`
	IncidentCount        int `json:"incidentCount" yaml:"incidentCount"`
	TotalFlightCycles    int `json:"totalFlightCycles" yaml:"totalFlightCycles"`
}

// ImprovementData counts corrective actions by maturity stage. The last two
// totals are informational and do not feed I(p).
type ImprovementData struct {
	TotalDeviationsNd                 int `json:"totalDeviationsNd" yaml:"totalDeviationsNd"`
	TotalFindingsNf                   int `json:"totalFindingsNf" yaml:"totalFindingsNf"`
	CorrectiveActionsRootCause        int `json:"correctiveActionsRootCause" yaml:"correctiveActionsRootCause"`
	CorrectiveActionsHazardIdentified int `json:"correctiveActionsHazardIdentified" yaml:"correctiveActionsHazardIdentified"`
	CorrectiveActionsRiskAssessed     int `json:"correctiveActionsRiskAssessed" yaml:"correctiveActionsRiskAssessed"`
	CorrectiveActionsRiskMitigated    int `json:"correctiveActionsRiskMitigated" yaml:"correctiveActionsRiskMitigated"`

	TotalCorrectiveActionsAppliedToFindings   int `json:"totalCorrectiveActionsAppliedToFindings" yaml:"totalCorrectiveActionsAppliedToFindings"`
	TotalCorrectiveActionsAppliedToDeviations int `json:"totalCorrectiveActionsAppliedToDeviations" yaml:"totalCorrectiveActionsAppliedToDeviations"`
}

// RbsResult is the full set of derived RBS fields. It is always produced and
// applied as one value so readers never see a partial recompute.
type RbsResult struct {
	ExposureScore        float64        `json:"exposureScore"`
	ExposureLevel        ExposureLevel  `json:"exposureLevel"`
	ComplianceScore      float64        `json:"complianceFactorScore"`
	DeviationScore       float64        `json:"deviationFactorScore"`
	ImprovementScore     float64        `json:"improvementFactorScore"`
	PerformanceScore     float64        `json:"overallPerformanceScore"`
	IndicatorLevel       IndicatorLevel `json:"riskIndicatorLevel"`
	IndicatorLabel       string         `json:"riskIndicatorLabel"`
	CategoryKey          CategoryKey    `json:"finalRiskCategoryKey"`
	SuggestedCycleMonths int            `json:"suggestedSurveillanceCycleMonths"`
	Zone                 RiskZone       `json:"riskZone"`
}

type LegacyRisk struct {
	Score int       `json:"legacyOverallRiskScore"`
	Level RiskLevel `json:"legacyOverallRiskLevel"`
}

type LegacyRiskFactors struct {
	AircraftFrequency       int          `json:"aircraftFrequency" yaml:"aircraftFrequency"`
	EnvironmentalComplexity int          `json:"environmentalComplexity" yaml:"environmentalComplexity"`
	Occurrences             []Occurrence `json:"occurrences" yaml:"occurrences"`
}

type Occurrence struct {
	ID                   string             `json:"id" yaml:"id"`
	DateTime             time.Time          `json:"dateTime" yaml:"dateTime"`
	Type                 OccurrenceType     `json:"type" yaml:"type"`
	Severity             SeverityLevel      `json:"severity" yaml:"severity"`
	Description          string             `json:"description" yaml:"description"`
	Category             OccurrenceCategory `json:"category,omitempty" yaml:"category"`
	FlightNumber         string             `json:"flightNumber,omitempty" yaml:"flightNumber"`
	AircraftRegistration string             `json:"aircraftRegistration,omitempty" yaml:"aircraftRegistration"`
	OriginICAO           string             `json:"originAirportICAO,omitempty" yaml:"originAirportICAO"`
	DestinationICAO      string             `json:"destinationAirportICAO,omitempty" yaml:"destinationAirportICAO"`
}

type SurveillanceFinding struct {
	ID                   string                  `json:"id"`
	DateAdded            time.Time               `json:"dateAdded"`
	AreaCategory         SurveillanceLogCategory `json:"surveillanceLogCategoryId,omitempty"`
	PredefinedAreaID     string                  `json:"predefinedAreaId,omitempty"`
	ItemNumber           string                  `json:"itemNumber,omitempty"`
	AreaDescription      string                  `json:"areaDescription,omitempty"`
	Finding              string                  `json:"finding"`
	Category             FindingCategoryLevel    `json:"findingCategory"`
	RootCauseAnalysis    string                  `json:"rootCauseAnalysis"`
	CorrectiveActionPlan string                  `json:"correctiveActionPlan"`
	RiskAssessment       string                  `json:"riskAssessment"`
	CorrectiveAction     string                  `json:"correctiveActionTaken"`
	TargetCompletionDate time.Time               `json:"targetCompletionDate"`
	IsCompleted          bool                    `json:"isCompleted"`
	ActualCompletionDate *time.Time              `json:"actualCompletionDate,omitempty"`
}

type SurveillanceLogItem struct {
	ID               string                  `json:"id"`
	PredefinedAreaID string                  `json:"predefinedAreaId"`
	Category         SurveillanceLogCategory `json:"category"`
	ItemNumber       string                  `json:"itemNumber"`
	Area             string                  `json:"area"`
	Status           SurveillanceLogStatus   `json:"status"`
	LastUpdated      time.Time               `json:"lastUpdated"`
	Notes            string                  `json:"notes,omitempty"`
}

// RiskIndicatorHistoryEntry is an immutable snapshot taken after a recompute.
type RiskIndicatorHistoryEntry struct {
	Date               time.Time      `json:"date"`
	TechnicalIndicator IndicatorLevel `json:"technicalIndicator"`
	EconomicIndicator  float64        `json:"economicIndicator"`
	PerformanceScore   float64        `json:"performanceScore"`
	ExposureLevel      ExposureLevel  `json:"exposureLevel"`
}

// OpenFindingCounts maps open findings onto compliance buckets:
// Level 1 -> ncp, Level 2 -> ncf, Level 3 -> nad.
func (o *Operator) OpenFindingCounts() (ncp, ncf, nad, open int) {
	for _, f := range o.Findings {
		if f.IsCompleted {
			continue
		}
		open++
		switch f.Category {
		case FindingLevel1:
			ncp++
		case FindingLevel2:
			ncf++
		case FindingLevel3:
			nad++
		}
	}
	return ncp, ncf, nad, open
}

// EffectiveCompliance returns the compliance data a recompute should score.
// Open findings take precedence over the stored counts; the stored
// checklist size is always kept.
func (o *Operator) EffectiveCompliance() ComplianceData {
	ncp, ncf, nad, open := o.OpenFindingCounts()
	if open == 0 {
		return o.Inputs.Compliance
	}
	return ComplianceData{
		NCP:                 ncp,
		NCF:                 ncf,
		NAD:                 nad,
		TotalChecklistItems: o.Inputs.Compliance.TotalChecklistItems,
	}
}

// FindingByID returns a pointer into o.Findings so callers can transition it.
func (o *Operator) FindingByID(id string) (*SurveillanceFinding, bool) {
	for i := range o.Findings {
		if o.Findings[i].ID == id {
			return &o.Findings[i], true
		}
	}
	return nil, false
}

// Clone returns a copy that shares no mutable slices with o.
func (o Operator) Clone() Operator {
	out := o
	out.Findings = append([]SurveillanceFinding(nil), o.Findings...)
	for i, f := range out.Findings {
		if f.ActualCompletionDate != nil {
			t := *f.ActualCompletionDate
			out.Findings[i].ActualCompletionDate = &t
		}
	}
	out.SurveillanceLogs = append([]SurveillanceLogItem(nil), o.SurveillanceLogs...)
	out.Inputs.Legacy.Occurrences = append([]Occurrence(nil), o.Inputs.Legacy.Occurrences...)
	if o.Inputs.EconomicFactors != nil {
		ef := *o.Inputs.EconomicFactors
		out.Inputs.EconomicFactors = &ef
	}
	if o.Inputs.EconomicIndicatorScore != nil {
		v := *o.Inputs.EconomicIndicatorScore
		out.Inputs.EconomicIndicatorScore = &v
	}
	if o.EconomicIndicatorScore != nil {
		v := *o.EconomicIndicatorScore
		out.EconomicIndicatorScore = &v
	}
	out.History = NewHistory(o.History.Entries()...)
	return out
}
