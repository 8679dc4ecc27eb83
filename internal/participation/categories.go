package participation

// Categories enumerates the activity types that count toward the IRS
// material participation tests. Hours logged under other labels still
// aggregate, but the UI restricts entry to this list.
var Categories = []string{
	"Guest Communication",
	"Booking Management",
	"Revenue Management",
	"Turnover Coordination",
	"Property Inspection",
	"Maintenance Coordination",
	"Maintenance (Self-Performed)",
	"Cleaning (Self-Performed)",
	"Restocking/Supplies",
	"Financial/Bookkeeping",
	"Tax Compliance",
	"Legal/Insurance",
	"Listing Management",
	"Marketing/Advertising",
	"Team Management",
	"Property Improvement",
	"Research/Education",
	"Travel to Property",
	"Local Compliance",
	"Technology/Software",
	"Other Management Activity",
}

// ValidCategory reports whether a label is one of the enumerated
// categories.
func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
