package httpadapter

import (
	api "github.com/alifrahmanhakim/AOC-RBS/internal/api"
	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

// Conversions between the generated API models and the domain. The
// validate tags on the models catch malformed payloads early; the engine
// still validates everything it reads.

func computeInputs(cx *api.ComplexityFactors, cp api.ComplianceData, dv api.DeviationData, im *api.ImprovementData) rbs.Inputs {
	in := rbs.Inputs{
		Compliance: domain.ComplianceData{
			NCP:                 cp.Ncp,
			NCF:                 cp.Ncf,
			NAD:                 cp.Nad,
			TotalChecklistItems: cp.TotalChecklistItems,
		},
		Deviation: domain.DeviationData{
			AccidentCount:        dv.AccidentCount,
			SeriousIncidentCount: dv.SeriousIncidentCount,
			IncidentCount:        dv.IncidentCount,
			TotalFlightCycles:    dv.TotalFlightCycles,
		},
	}
	if cx != nil {
		in.Complexity = domain.ComplexityFactors{
			AnnualFlightCount:   cx.AnnualFlightCount,
			NumEmployees:        cx.NumEmployees,
			NumAircraft:         cx.NumAircraft,
			NumAircraftModels:   cx.NumAircraftModels,
			NumDestinations:     cx.NumDestinations,
			HasInternationalOps: cx.HasInternationalOps,
			AvgFleetAge:         cx.AvgFleetAge,
			NumDomesticBases:    cx.NumDomesticBases,
		}
	}
	if im != nil {
		in.Improvement = domain.ImprovementData{
			TotalDeviationsNd:                         im.TotalDeviationsNd,
			TotalFindingsNf:                           im.TotalFindingsNf,
			CorrectiveActionsRootCause:                im.CorrectiveActionsRootCause,
			CorrectiveActionsHazardIdentified:         im.CorrectiveActionsHazardIdentified,
			CorrectiveActionsRiskAssessed:             im.CorrectiveActionsRiskAssessed,
			CorrectiveActionsRiskMitigated:            im.CorrectiveActionsRiskMitigated,
			TotalCorrectiveActionsAppliedToFindings:   im.TotalCorrectiveActionsAppliedToFindings,
			TotalCorrectiveActionsAppliedToDeviations: im.TotalCorrectiveActionsAppliedToDeviations,
		}
	}
	return in
}

func legacyFactors(l api.LegacyRiskFactors) domain.LegacyRiskFactors {
	out := domain.LegacyRiskFactors{
		AircraftFrequency:       l.AircraftFrequency,
		EnvironmentalComplexity: l.EnvironmentalComplexity,
	}
	for _, o := range l.Occurrences {
		out.Occurrences = append(out.Occurrences, domain.Occurrence{
			ID:                   o.Id,
			DateTime:             o.DateTime,
			Type:                 domain.OccurrenceType(o.Type),
			Severity:             domain.SeverityLevel(o.Severity),
			Description:          o.Description,
			Category:             domain.OccurrenceCategory(o.Category),
			FlightNumber:         o.FlightNumber,
			AircraftRegistration: o.AircraftRegistration,
			OriginICAO:           o.OriginAirportICAO,
			DestinationICAO:      o.DestinationAirportICAO,
		})
	}
	return out
}

// operatorInputs fills omitted legacy factors with the registration defaults.
func operatorInputs(r api.InputsRequest) domain.Inputs {
	in := computeInputs(r.ComplexityFactors, r.ComplianceData, r.DeviationData, r.ImprovementData)
	out := domain.Inputs{
		Complexity:             in.Complexity,
		Compliance:             in.Compliance,
		Deviation:              in.Deviation,
		Improvement:            in.Improvement,
		Legacy:                 domain.DefaultInputs().Legacy,
		EconomicIndicatorScore: r.EconomicIndicatorScore,
	}
	if r.LegacyRiskFactors != nil {
		out.Legacy = legacyFactors(*r.LegacyRiskFactors)
	}
	if ef := r.EconomicFactors; ef != nil {
		out.EconomicFactors = &domain.EconomicFactors{
			Liquidity:                 ef.Liquidity,
			ShortTermDebt:             ef.ShortTermDebt,
			LongTermDebt:              ef.LongTermDebt,
			Decapitalization:          ef.Decapitalization,
			ProfitabilityAndCashFlows: ef.ProfitabilityAndCashFlows,
		}
	}
	return out
}

func newFinding(r api.FindingRequest) findings.NewFinding {
	nf := findings.NewFinding{
		PredefinedAreaID:     r.PredefinedAreaId,
		AreaCategory:         domain.SurveillanceLogCategory(r.SurveillanceLogCategoryId),
		ItemNumber:           r.ItemNumber,
		AreaDescription:      r.AreaDescription,
		Finding:              r.Finding,
		Category:             domain.FindingCategoryLevel(r.FindingCategory),
		RootCauseAnalysis:    r.RootCauseAnalysis,
		CorrectiveActionPlan: r.CorrectiveActionPlan,
		RiskAssessment:       r.RiskAssessment,
		CorrectiveAction:     r.CorrectiveActionTaken,
	}
	if r.DateAdded != nil {
		nf.DateAdded = *r.DateAdded
	}
	return nf
}

func surveillanceAreas() []api.SurveillanceArea {
	areas := domain.PredefinedAreas()
	out := make([]api.SurveillanceArea, 0, len(areas))
	for _, a := range areas {
		out = append(out, api.SurveillanceArea{
			Id:                a.ID,
			ItemNumber:        a.ItemNumber,
			AreaDescription:   a.AreaDescription,
			Category:          string(a.Category),
			CategoryTitle:     a.Category.Title(),
			DefaultFormNumber: a.DefaultFormNumber,
		})
	}
	return out
}

func occurrenceCategories() []api.OccurrenceCategory {
	cats := domain.OccurrenceCategories()
	out := make([]api.OccurrenceCategory, 0, len(cats))
	for _, c := range cats {
		out = append(out, api.OccurrenceCategory{Code: string(c), Label: c.Label()})
	}
	return out
}
