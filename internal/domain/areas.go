package domain

// PredefinedSurveillanceArea is one row of the surveillance area tables
// (6-1 airworthiness, 6-2 operations, 6-3 SMS, 6-4 QMS).
type PredefinedSurveillanceArea struct {
	ID                string                  `json:"id"`
	ItemNumber        string                  `json:"itemNumber"`
	AreaDescription   string                  `json:"areaDescription"`
	Category          SurveillanceLogCategory `json:"category"`
	DefaultFormNumber string                  `json:"defaultFormNumber,omitempty"`
}

var predefinedAreas = []PredefinedSurveillanceArea{
	{ID: "airworthiness-1", ItemNumber: "1", AreaDescription: "Management and Administration", Category: AreaAirworthiness, DefaultFormNumber: "120-15"},
	{ID: "airworthiness-2.1", ItemNumber: "2.1", AreaDescription: "Company Aircraft Maintenance Manual", Category: AreaAirworthiness, DefaultFormNumber: "120-32"},
	{ID: "airworthiness-2.2", ItemNumber: "2.2", AreaDescription: "Operations Specifications", Category: AreaAirworthiness, DefaultFormNumber: "120-16"},
	{ID: "airworthiness-2.3", ItemNumber: "2.3", AreaDescription: "Minimum Equipment List (MEL)", Category: AreaAirworthiness, DefaultFormNumber: "120-53"},
	{ID: "airworthiness-2.4", ItemNumber: "2.4", AreaDescription: "Publications/Library (Airworthiness)", Category: AreaAirworthiness, DefaultFormNumber: "120-53"},
	{ID: "airworthiness-3", ItemNumber: "3", AreaDescription: "Training Program and Records (Aircraft Maintenance Personnel)", Category: AreaAirworthiness, DefaultFormNumber: "120-52"},
	{ID: "airworthiness-4.1", ItemNumber: "4.1", AreaDescription: "AD Compliance", Category: AreaAirworthiness, DefaultFormNumber: "120-41"},
	{ID: "airworthiness-4.2", ItemNumber: "4.2", AreaDescription: "Aircraft Maintenance Records System", Category: AreaAirworthiness, DefaultFormNumber: "120-42"},
	{ID: "airworthiness-4.3", ItemNumber: "4.3", AreaDescription: "Major Repairs and Modifications", Category: AreaAirworthiness, DefaultFormNumber: "120-47"},
	{ID: "airworthiness-5.1", ItemNumber: "5.1", AreaDescription: "Maintenance Facilities", Category: AreaAirworthiness, DefaultFormNumber: "120-51"},
	{ID: "airworthiness-5.2", ItemNumber: "5.2", AreaDescription: "Refueling and Servicing", Category: AreaAirworthiness, DefaultFormNumber: "120-48"},
	{ID: "airworthiness-6", ItemNumber: "6", AreaDescription: "Aircraft Maintenance Contract Arrangements", Category: AreaAirworthiness, DefaultFormNumber: "120-43"},
	{ID: "airworthiness-7", ItemNumber: "7", AreaDescription: "Minimum Equipment List (MEL) Management Program", Category: AreaAirworthiness, DefaultFormNumber: "120-54"},
	{ID: "airworthiness-8.1", ItemNumber: "8.1", AreaDescription: "Aircraft Maintenance Program (General)", Category: AreaAirworthiness, DefaultFormNumber: "120-33"},
	{ID: "airworthiness-8.2", ItemNumber: "8.2", AreaDescription: "Aging Aircraft Program", Category: AreaAirworthiness, DefaultFormNumber: "120-49"},
	{ID: "airworthiness-8.3", ItemNumber: "8.3", AreaDescription: "Weight and Balance", Category: AreaAirworthiness, DefaultFormNumber: "120-35"},
	{ID: "airworthiness-8.4", ItemNumber: "8.4", AreaDescription: "Aircraft Maintenance Inspection System & RII", Category: AreaAirworthiness, DefaultFormNumber: "120-44"},
	{ID: "airworthiness-9", ItemNumber: "9", AreaDescription: "Aircraft Maintenance Process Inspection", Category: AreaAirworthiness, DefaultFormNumber: "120-50"},
	{ID: "airworthiness-10.1", ItemNumber: "10.1", AreaDescription: "CASP (Continuing Analysis and Surveillance Program)", Category: AreaAirworthiness, DefaultFormNumber: "120-45"},
	{ID: "airworthiness-10.2", ItemNumber: "10.2", AreaDescription: "Reliability Program", Category: AreaAirworthiness, DefaultFormNumber: "120-36"},
	{ID: "airworthiness-11.1", ItemNumber: "11.1", AreaDescription: "SDR Reporting Procedure", Category: AreaAirworthiness, DefaultFormNumber: "120-46"},
	{ID: "airworthiness-11.2", ItemNumber: "11.2", AreaDescription: "Mechanical Interruption Summary Report (MISR)", Category: AreaAirworthiness, DefaultFormNumber: "43-03"},
	{ID: "airworthiness-12", ItemNumber: "12", AreaDescription: "Ramp Inspection (Airworthiness)", Category: AreaAirworthiness, DefaultFormNumber: "120-13"},

	{ID: "operations-1", ItemNumber: "1", AreaDescription: "Management and Administration (Operations)", Category: AreaOperations, DefaultFormNumber: "120-15"},
	{ID: "operations-2.1", ItemNumber: "2.1", AreaDescription: "Publications/Library (Operations)", Category: AreaOperations, DefaultFormNumber: "120-34"},
	{ID: "operations-2.2", ItemNumber: "2.2", AreaDescription: "Operations Manual", Category: AreaOperations, DefaultFormNumber: "120-16"},
	{ID: "operations-2.3", ItemNumber: "2.3", AreaDescription: "Aircraft Documentation (Operations)", Category: AreaOperations, DefaultFormNumber: "120-53"},
	{ID: "operations-3", ItemNumber: "3", AreaDescription: "Minimum Equipment List (MEL) Management Program (Operations)", Category: AreaOperations, DefaultFormNumber: "120-54"},
	{ID: "operations-4", ItemNumber: "4", AreaDescription: "Operational Control", Category: AreaOperations, DefaultFormNumber: "8400-04"},
	{ID: "operations-5", ItemNumber: "5", AreaDescription: "Flight Log / Flight Documentation", Category: AreaOperations, DefaultFormNumber: "8400-05"},
	{ID: "operations-6", ItemNumber: "6", AreaDescription: "Flight and Duty Time Records", Category: AreaOperations, DefaultFormNumber: "8400-06"},
	{ID: "operations-7.a", ItemNumber: "7.a", AreaDescription: "Ground Training - Pilot, Cabin Crew, Operations Officer", Category: AreaOperations, DefaultFormNumber: "8400-23"},
	{ID: "operations-7.b", ItemNumber: "7.b", AreaDescription: "Simulator and/or Flight Training - Pilot, Cabin Crew, Operations Officer", Category: AreaOperations, DefaultFormNumber: "8400-23"},
	{ID: "operations-8", ItemNumber: "8", AreaDescription: "Company Check Program (Check Pilot, FA, and FOO)", Category: AreaOperations, DefaultFormNumber: "8400-24"},
	{ID: "operations-9", ItemNumber: "9", AreaDescription: "Cockpit Enroute Inspection", Category: AreaOperations, DefaultFormNumber: "8400-09"},
	{ID: "operations-10", ItemNumber: "10", AreaDescription: "Cabin Enroute Inspection", Category: AreaOperations, DefaultFormNumber: "8400-10"},
	{ID: "operations-11", ItemNumber: "11", AreaDescription: "Station Facilities Inspection", Category: AreaOperations, DefaultFormNumber: "8400-11"},
	{ID: "operations-12", ItemNumber: "12", AreaDescription: "Route Inspection", Category: AreaOperations, DefaultFormNumber: "N/A"},
	{ID: "operations-13", ItemNumber: "13", AreaDescription: "Flight Crew Proficiency and Competency Check", Category: AreaOperations, DefaultFormNumber: "8400-13"},

	{ID: "sms-1", ItemNumber: "1", AreaDescription: "Safety Management System (SMS) Manual", Category: AreaSMS, DefaultFormNumber: "120-90 Part I"},
	{ID: "sms-2", ItemNumber: "2", AreaDescription: "SMS Implementation", Category: AreaSMS, DefaultFormNumber: "120-90 Part II"},
	{ID: "sms-3", ItemNumber: "3", AreaDescription: "Flight Data Analysis (FDA) - If Applicable", Category: AreaSMS, DefaultFormNumber: "120-95"},
	{ID: "sms-4", ItemNumber: "4", AreaDescription: "SMS Reporting System", Category: AreaSMS, DefaultFormNumber: "120-98"},
	{ID: "sms-5", ItemNumber: "5", AreaDescription: "Internal Audit Process including Contractors (SMS)", Category: AreaSMS, DefaultFormNumber: "120-97"},

	{ID: "qms-1", ItemNumber: "1", AreaDescription: "Quality Assurance Organization and Management", Category: AreaQMS, DefaultFormNumber: "120-83"},
	{ID: "qms-2", ItemNumber: "2", AreaDescription: "Audit Program (QMS)", Category: AreaQMS, DefaultFormNumber: "120-84"},
	{ID: "qms-3", ItemNumber: "3", AreaDescription: "Auditor Training and Qualification Program (QMS)", Category: AreaQMS, DefaultFormNumber: "120-85"},
	{ID: "qms-4", ItemNumber: "4", AreaDescription: "Process for Addressing Findings (QMS)", Category: AreaQMS, DefaultFormNumber: "120-86"},
	{ID: "qms-5", ItemNumber: "5", AreaDescription: "Audit Quality and Records (QMS)", Category: AreaQMS, DefaultFormNumber: "120-87"},
}

var predefinedAreaIndex = func() map[string]PredefinedSurveillanceArea {
	m := make(map[string]PredefinedSurveillanceArea, len(predefinedAreas))
	for _, a := range predefinedAreas {
		m[a.ID] = a
	}
	return m
}()

// PredefinedAreas returns the catalogue in table order.
func PredefinedAreas() []PredefinedSurveillanceArea {
	return append([]PredefinedSurveillanceArea(nil), predefinedAreas...)
}

func LookupArea(id string) (PredefinedSurveillanceArea, bool) {
	a, ok := predefinedAreaIndex[id]
	return a, ok
}
