// Package compliance holds the regulatory checklist catalog for short-term
// rental operators: federal requirements that apply everywhere plus
// state-specific items for the states with notable STR regimes.
package compliance

import "strings"

// Requirement is one checklist item.
type Requirement struct {
	Item        string `json:"item"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Required    bool   `json:"required"`
	Level       string `json:"level"`
}

var federal = []Requirement{
	{Item: "EIN (Employer Identification Number)", Description: "Obtain from IRS if operating as LLC or have employees.", Category: "Tax", Required: true},
	{Item: "Schedule E Filing", Description: "Report rental income/expenses on IRS Form 1040, Schedule E.", Category: "Tax", Required: true},
	{Item: "1099-K Reconciliation", Description: "Airbnb/VRBO issue 1099-K if gross payments exceed $600. Reconcile with records.", Category: "Tax", Required: true},
	{Item: "Material Participation Log", Description: "Maintain contemporaneous log of hours for IRS material participation tests.", Category: "Tax", Required: true},
	{Item: "Safe Harbor Election (Rev. Proc. 2019-38)", Description: "Rental real estate safe harbor: 250+ hours/year with separate books.", Category: "Tax", Required: false},
	{Item: "Depreciation Records", Description: "Track basis, improvements, depreciation schedule (27.5 yr residential).", Category: "Tax", Required: true},
	{Item: "Cost Segregation Study", Description: "Accelerate depreciation on components (5, 7, 15-yr property). Consult CPA.", Category: "Tax", Required: false},
	{Item: "LLC Formation", Description: "Consider LLC for liability protection.", Category: "Legal", Required: false},
	{Item: "Umbrella Insurance ($1M+)", Description: "Umbrella policy beyond standard landlord policy.", Category: "Insurance", Required: false},
	{Item: "STR-Specific Insurance", Description: "Proper STR policy (Proper, CBIZ) - standard homeowner may not cover.", Category: "Insurance", Required: true},
	{Item: "Fair Housing Compliance", Description: "Cannot discriminate based on protected classes.", Category: "Legal", Required: true},
	{Item: "Record Retention (7 Years)", Description: "Keep all financial records, receipts, tax documents 7+ years.", Category: "Tax", Required: true},
	{Item: "Quarterly Estimated Tax", Description: "Make quarterly estimated payments (Form 1040-ES) if liability expected.", Category: "Tax", Required: true},
	{Item: "Sales/Lodging Tax", Description: "Some platforms collect automatically. Verify for direct bookings.", Category: "Tax", Required: true},
	{Item: "Separate Bank Account", Description: "Required for safe harbor. Maintain separate account for rental activity.", Category: "Financial", Required: true},
}

type stateCatalog struct {
	name  string
	items []Requirement
}

var states = map[string]stateCatalog{
	"CA": {"California", []Requirement{
		{Item: "Transient Occupancy Tax (TOT) Registration", Description: "Register with city/county. Rates 8-15%. Airbnb collects in some cities.", Required: true},
		{Item: "City STR Permit/License", Description: "Many CA cities require permits (SF, LA, SD, Palm Springs). Check local.", Required: true},
		{Item: "Primary Residence Requirement", Description: "Many CA cities restrict STR to primary residence (SF, LA, Santa Monica).", Required: false},
		{Item: "Night Cap Limits", Description: "Some cities cap nights (SF: 90 unhosted, LA: 120 days).", Required: false},
		{Item: "CA State Tax Return", Description: "Report on Form 540, Schedule CA.", Required: true},
		{Item: "Business License", Description: "Most CA cities require general business license.", Required: true},
		{Item: "Hosting Platform Registration", Description: "Some cities require permit number on listing.", Required: true},
	}},
	"FL": {"Florida", []Requirement{
		{Item: "DBPR Vacation Rental License", Description: "Register with FL DBPR. Required for all STRs.", Required: true},
		{Item: "Sales Tax Registration", Description: "FL sales tax (6%) plus county surtax.", Required: true},
		{Item: "Tourist Development Tax", Description: "County-level (2-6%). Register with county.", Required: true},
		{Item: "Annual Safety Inspection", Description: "DBPR requires periodic inspections.", Required: true},
		{Item: "Local Business Tax Receipt", Description: "Required in many FL counties.", Required: true},
	}},
	"TX": {"Texas", []Requirement{
		{Item: "Hotel Occupancy Tax", Description: "TX Comptroller. State 6% plus local.", Required: true},
		{Item: "City STR Permit", Description: "Austin, Dallas, SA, Houston have registration requirements.", Required: true},
		{Item: "No State Income Tax", Description: "Federal filing only.", Required: false},
	}},
	"CO": {"Colorado", []Requirement{
		{Item: "Sales Tax License", Description: "CO Dept of Revenue for state/local sales tax.", Required: true},
		{Item: "Lodging Tax", Description: "State + local vary by jurisdiction.", Required: true},
		{Item: "City/County STR License", Description: "Denver, Boulder, mountain towns require licensing.", Required: true},
	}},
	"TN": {"Tennessee", []Requirement{
		{Item: "State Sales Tax", Description: "TN Dept of Revenue. State 7% + local.", Required: true},
		{Item: "STR Permit", Description: "Nashville and other cities require permits.", Required: true},
	}},
	"AZ": {"Arizona", []Requirement{
		{Item: "Transaction Privilege Tax (TPT)", Description: "Register with AZ DOR.", Required: true},
		{Item: "Residential Rental Registration", Description: "Register with county assessor.", Required: true},
		{Item: "State Income Tax", Description: "Report on AZ return.", Required: true},
	}},
	"NY": {"New York", []Requirement{
		{Item: "NYC Local Law 18 Registration", Description: "NYC requires registration. Must be present during stay.", Required: true},
		{Item: "Sales Tax + Hotel Room Occupancy Tax", Description: "NYS + NYC hotel tax (5.875% + $1.50/night).", Required: true},
		{Item: "Multiple Dwelling Law (NYC)", Description: "Restricts STR in multi-unit buildings <30 days.", Required: true},
	}},
	"HI": {"Hawaii", []Requirement{
		{Item: "GET License", Description: "General Excise Tax 4-4.5%.", Required: true},
		{Item: "Transient Accommodations Tax (TAT)", Description: "State TAT 10.25% + county surcharge 3%.", Required: true},
		{Item: "County STR Permit", Description: "Varies by island/county.", Required: true},
	}},
}

var defaultStateItems = []Requirement{
	{Item: "State Tax Return", Description: "Report rental income on state return if applicable.", Required: true},
	{Item: "Lodging/Hotel Tax", Description: "Check state/local lodging tax requirements.", Required: true},
	{Item: "City/County STR Permit", Description: "Check local ordinances for permit requirements.", Required: true},
	{Item: "Business License", Description: "Check city/county business license requirements.", Required: true},
	{Item: "Zoning Compliance", Description: "Verify STR permitted in your zone.", Required: true},
	{Item: "Safety/Fire Compliance", Description: "Smoke/CO detectors, fire extinguisher. Some require inspection.", Required: true},
	{Item: "HOA/Condo Rules", Description: "Check CC&Rs for STR restrictions.", Required: true},
}

// Checklist returns the federal items followed by the state items for the
// given two-letter code. Unknown states get a generic local checklist.
func Checklist(stateCode string) []Requirement {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	out := make([]Requirement, 0, len(federal)+8)
	for _, r := range federal {
		r.Level = "Federal"
		out = append(out, r)
	}
	if sc, ok := states[code]; ok {
		for _, r := range sc.items {
			r.Category = "State"
			r.Level = "State (" + sc.name + ")"
			out = append(out, r)
		}
		return out
	}
	for _, r := range defaultStateItems {
		r.Category = "State/Local"
		r.Level = "State (" + code + ")"
		out = append(out, r)
	}
	return out
}

// States lists the state codes with a dedicated catalog.
func States() []string {
	out := make([]string, 0, len(states))
	for code := range states {
		out = append(out, code)
	}
	return out
}
