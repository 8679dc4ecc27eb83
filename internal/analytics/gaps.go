package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

// Gap is an unbooked stretch of nights inside the lookahead window.
type Gap struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Nights int       `json:"nights"`
}

// PricingSuggestion recommends a rate adjustment for an upcoming gap.
type PricingSuggestion struct {
	Type          string  `json:"type"` // discount | urgent
	Message       string  `json:"message"`
	Reason        string  `json:"reason"`
	SuggestedRate float64 `json:"suggested_rate"`
}

// GapNights walks the property's future bookings in date order and returns
// the uncovered stretches between today and today+lookahead days. Blocked
// ranges count as covered; the owner chose to close them.
func GapNights(bookings []store.Booking, propertyID string, today time.Time, lookaheadDays int) []Gap {
	end := today.AddDate(0, 0, lookaheadDays)

	var future []store.Booking
	for _, b := range bookings {
		if b.PropertyID != propertyID || b.Status == store.StatusCancelled {
			continue
		}
		if b.CheckOut.After(today) {
			future = append(future, b)
		}
	}
	sort.Slice(future, func(i, j int) bool { return future[i].CheckIn.Before(future[j].CheckIn) })

	var gaps []Gap
	current := today
	for _, b := range future {
		if b.CheckIn.After(current) {
			if nights := int(b.CheckIn.Sub(current).Hours() / 24); nights >= 1 {
				gaps = append(gaps, Gap{Start: current, End: b.CheckIn, Nights: nights})
			}
		}
		if b.CheckOut.After(current) {
			current = b.CheckOut
		}
	}
	if current.Before(end) {
		gaps = append(gaps, Gap{Start: current, End: end, Nights: int(end.Sub(current).Hours() / 24)})
	}
	return gaps
}

// SuggestPricing flags short gaps close to date for a modest discount and
// long imminent vacancies for a steeper drop.
func SuggestPricing(bookings []store.Booking, prop store.Property, today time.Time, lookaheadDays int) []PricingSuggestion {
	var suggestions []PricingSuggestion
	base := prop.NightlyRate
	for _, gap := range GapNights(bookings, prop.ID, today, lookaheadDays) {
		daysUntil := int(gap.Start.Sub(today).Hours() / 24)
		switch {
		case gap.Nights <= 2 && daysUntil <= 7:
			rate := math.Round(base * 0.85)
			suggestions = append(suggestions, PricingSuggestion{
				Type:          "discount",
				Message:       fmt.Sprintf("%d-night gap starting %s. Consider $%.0f/night (15%% off).", gap.Nights, gap.Start.Format("2006-01-02"), rate),
				Reason:        "Short gap close to date",
				SuggestedRate: rate,
			})
		case gap.Nights >= 7 && daysUntil <= 3:
			rate := math.Round(base * 0.75)
			suggestions = append(suggestions, PricingSuggestion{
				Type:          "urgent",
				Message:       fmt.Sprintf("%d-night gap in %d days. Drop to $%.0f/night.", gap.Nights, daysUntil, rate),
				Reason:        "Long vacancy imminent",
				SuggestedRate: rate,
			})
		}
	}
	return suggestions
}
