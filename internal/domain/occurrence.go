package domain

import "slices"

// OccurrenceCategory follows the ICAO ADREP / CICTT occurrence taxonomy.
type OccurrenceCategory string

const (
	CategoryADRM  OccurrenceCategory = "ADRM"
	CategoryAMAN  OccurrenceCategory = "AMAN"
	CategoryARC   OccurrenceCategory = "ARC"
	CategoryATM   OccurrenceCategory = "ATM"
	CategoryBIRD  OccurrenceCategory = "BIRD"
	CategoryCABIN OccurrenceCategory = "CABIN"
	CategoryCFIT  OccurrenceCategory = "CFIT"
	CategoryCTOL  OccurrenceCategory = "CTOL"
	CategoryEVAC  OccurrenceCategory = "EVAC"
	CategoryEXTL  OccurrenceCategory = "EXTL"
	CategoryFNI   OccurrenceCategory = "F-NI"
	CategoryFPOST OccurrenceCategory = "F-POST"
	CategoryFUEL  OccurrenceCategory = "FUEL"
	CategoryGCOL  OccurrenceCategory = "GCOL"
	CategoryGTOW  OccurrenceCategory = "GTOW"
	CategoryICE   OccurrenceCategory = "ICE"
	CategoryLALT  OccurrenceCategory = "LALT"
	CategoryLOCG  OccurrenceCategory = "LOC-G"
	CategoryLOCI  OccurrenceCategory = "LOC-I"
	CategoryLOLI  OccurrenceCategory = "LOLI"
	CategoryMAC   OccurrenceCategory = "MAC"
	CategoryRAMP  OccurrenceCategory = "RAMP"
	CategoryRE    OccurrenceCategory = "RE"
	CategoryRIO   OccurrenceCategory = "RI-O"
	CategoryRIVA  OccurrenceCategory = "RI-VA"
	CategorySCFNP OccurrenceCategory = "SCF-NP"
	CategorySCFPP OccurrenceCategory = "SCF-PP"
	CategorySEC   OccurrenceCategory = "SEC"
	CategoryTURB  OccurrenceCategory = "TURB"
	CategoryUIMC  OccurrenceCategory = "UIMC"
	CategoryUSOS  OccurrenceCategory = "USOS"
	CategoryWILD  OccurrenceCategory = "WILD"
	CategoryWSTRW OccurrenceCategory = "WSTRW"
	CategoryOTHR  OccurrenceCategory = "OTHR"
	CategoryUNK   OccurrenceCategory = "UNK"
)

var occurrenceCategoryLabels = map[OccurrenceCategory]string{
	CategoryADRM:  "Aerodrome Design/Service",
	CategoryAMAN:  "Abrupt Maneuver",
	CategoryARC:   "Abnormal Runway Contact",
	CategoryATM:   "ATM/CNS Service Issues",
	CategoryBIRD:  "Birdstrike",
	CategoryCABIN: "Cabin Safety Events",
	CategoryCFIT:  "Controlled Flight Into Terrain",
	CategoryCTOL:  "Collision During Takeoff/Landing",
	CategoryEVAC:  "Evacuation Issues",
	CategoryEXTL:  "External Load Operations",
	CategoryFNI:   "Fire/Smoke (Non-Impact)",
	CategoryFPOST: "Fire/Smoke (Post-Impact)",
	CategoryFUEL:  "Fuel Related",
	CategoryGCOL:  "Ground Collision",
	CategoryGTOW:  "Glider Towing Events",
	CategoryICE:   "Icing",
	CategoryLALT:  "Low Altitude Operations",
	CategoryLOCG:  "Loss of Control - Ground",
	CategoryLOCI:  "Loss of Control - Inflight",
	CategoryLOLI:  "Loss of Lifting Conditions (En-route)",
	CategoryMAC:   "Mid-Air Collision/Airprox/ACAS",
	CategoryRAMP:  "Ground Handling",
	CategoryRE:    "Runway Excursion",
	CategoryRIO:   "Runway Incursion (Other)",
	CategoryRIVA:  "Runway Incursion (Vehicle/Aircraft)",
	CategorySCFNP: "System/Component Failure (Non-Powerplant)",
	CategorySCFPP: "System/Component Failure (Powerplant)",
	CategorySEC:   "Security Related",
	CategoryTURB:  "Turbulence Encounter",
	CategoryUIMC:  "Unintended Flight in IMC",
	CategoryUSOS:  "Undershoot/Overshoot",
	CategoryWILD:  "Wildlife Collision/Risk (Runway/Helipad)",
	CategoryWSTRW: "Windshear/Thunderstorm",
	CategoryOTHR:  "Other",
	CategoryUNK:   "Unknown/Undetermined",
}

// IsValid accepts the empty category; it is optional on an occurrence.
func (c OccurrenceCategory) IsValid() bool {
	if c == "" {
		return true
	}
	_, ok := occurrenceCategoryLabels[c]
	return ok
}

func (c OccurrenceCategory) Label() string { return occurrenceCategoryLabels[c] }

// OccurrenceCategories lists the taxonomy sorted by code.
func OccurrenceCategories() []OccurrenceCategory {
	out := make([]OccurrenceCategory, 0, len(occurrenceCategoryLabels))
	for c := range occurrenceCategoryLabels {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
