// Package briefing assembles the owner's daily operational digest from the
// booking calendar and maintenance queue.
package briefing

import (
	"fmt"
	"sort"
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

// Action is one prioritized item on the owner's list for the day.
type Action struct {
	Priority   string `json:"priority"` // high | medium | low
	Type       string `json:"type"`
	Text       string `json:"text"`
	PropertyID string `json:"property_id"`
}

// Stay pairs a booking with its property's display name.
type Stay struct {
	Booking         store.Booking `json:"booking"`
	PropertyName    string        `json:"property"`
	NightsRemaining int           `json:"nights_remaining,omitempty"`
}

// Briefing is the digest for one calendar day.
type Briefing struct {
	Date             string   `json:"date"`
	Actions          []Action `json:"actions"`
	CheckInsToday    []Stay   `json:"check_ins_today"`
	CheckOutsToday   []Stay   `json:"check_outs_today"`
	CheckInsTomorrow []Stay   `json:"check_ins_tomorrow"`
	ActiveStays      []Stay   `json:"active_stays"`
	TurnoversNeeded  []Stay   `json:"turnovers_needed"`
	VacantTonight    []string `json:"vacant_tonight"`
	OccupancyTonight float64  `json:"occupancy_rate"`
	RevenueThisMonth float64  `json:"revenue_this_month"`
	Summary          string   `json:"summary"`
}

var priorityOrder = map[string]int{"high": 0, "medium": 1, "low": 2}

// Build computes the digest for the given day. Cancelled bookings are
// invisible; blocked ranges occupy the calendar but generate no actions.
func Build(properties []store.Property, bookings []store.Booking, maintenance []store.MaintenanceItem, today time.Time) Briefing {
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	b := Briefing{Date: today.Format("2006-01-02")}
	names := make(map[string]string, len(properties))
	active := 0
	for _, p := range properties {
		names[p.ID] = displayName(p)
		if p.Active {
			active++
		}
	}
	occupied := make(map[string]bool)

	for _, bk := range bookings {
		if bk.Status == store.StatusCancelled {
			continue
		}
		pname := names[bk.PropertyID]
		guest := bk.GuestName
		if guest == "" {
			guest = "Guest"
		}

		inToday := sameDay(bk.CheckIn, today)
		outToday := sameDay(bk.CheckOut, today)
		inProgress := !bk.CheckIn.After(today) && bk.CheckOut.After(today)

		if inProgress {
			occupied[bk.PropertyID] = true
		}
		if bk.CheckIn.Month() == today.Month() && bk.CheckIn.Year() == today.Year() {
			b.RevenueThisMonth += bk.NetPayout
		}
		if bk.Status == store.StatusBlocked {
			continue
		}

		stay := Stay{Booking: bk, PropertyName: pname}
		switch {
		case inToday:
			b.CheckInsToday = append(b.CheckInsToday, stay)
			b.Actions = append(b.Actions,
				Action{Priority: "high", Type: "check_in", Text: fmt.Sprintf("%s checks into %s today", guest, pname), PropertyID: bk.PropertyID},
				Action{Priority: "medium", Type: "message", Text: fmt.Sprintf("Send check-in instructions to %s (%s)", guest, pname), PropertyID: bk.PropertyID},
			)
		case sameDay(bk.CheckIn, tomorrow):
			b.CheckInsTomorrow = append(b.CheckInsTomorrow, stay)
			b.Actions = append(b.Actions,
				Action{Priority: "medium", Type: "message", Text: fmt.Sprintf("Send day-before instructions to %s (%s)", guest, pname), PropertyID: bk.PropertyID})
		}
		if outToday {
			b.CheckOutsToday = append(b.CheckOutsToday, stay)
			b.TurnoversNeeded = append(b.TurnoversNeeded, stay)
			b.Actions = append(b.Actions,
				Action{Priority: "high", Type: "checkout", Text: fmt.Sprintf("%s checks out of %s today", guest, pname), PropertyID: bk.PropertyID},
				Action{Priority: "high", Type: "turnover", Text: fmt.Sprintf("Confirm turnover for %s", pname), PropertyID: bk.PropertyID},
			)
		}
		if sameDay(bk.CheckOut, yesterday) {
			b.Actions = append(b.Actions,
				Action{Priority: "low", Type: "message", Text: fmt.Sprintf("Review request to %s (%s)", guest, pname), PropertyID: bk.PropertyID})
		}
		// A stay is active from check-in day through the night before
		// checkout, so today's arrivals count as in-house tonight.
		if inProgress {
			stay.NightsRemaining = int(bk.CheckOut.Sub(today).Hours() / 24)
			b.ActiveStays = append(b.ActiveStays, stay)
			if bk.Nights >= 4 && sameDay(bk.CheckIn.AddDate(0, 0, bk.Nights/2), today) {
				b.Actions = append(b.Actions,
					Action{Priority: "low", Type: "message", Text: fmt.Sprintf("Mid-stay check with %s (%s)", guest, pname), PropertyID: bk.PropertyID})
			}
		}
	}

	for _, p := range properties {
		if p.Active && !occupied[p.ID] {
			b.VacantTonight = append(b.VacantTonight, p.ID)
		}
	}
	if active > 0 {
		b.OccupancyTonight = float64(len(occupied)) / float64(active) * 100
	}

	for _, item := range maintenance {
		if (item.Status == "open" || item.Status == "in_progress") && (item.Priority == "high" || item.Priority == "urgent") {
			prio := "medium"
			if item.Priority == "urgent" {
				prio = "high"
			}
			b.Actions = append(b.Actions,
				Action{Priority: prio, Type: "maintenance", Text: fmt.Sprintf("%s at %s", item.Title, names[item.PropertyID]), PropertyID: item.PropertyID})
		}
	}

	sort.SliceStable(b.Actions, func(i, j int) bool {
		return priorityOrder[b.Actions[i].Priority] < priorityOrder[b.Actions[j].Priority]
	})
	b.Summary = summarize(b)
	return b
}

func summarize(b Briefing) string {
	var parts []string
	if n := len(b.CheckInsToday); n > 0 {
		parts = append(parts, fmt.Sprintf("%d check-in%s", n, plural(n)))
	}
	if n := len(b.CheckOutsToday); n > 0 {
		parts = append(parts, fmt.Sprintf("%d checkout%s", n, plural(n)))
	}
	if n := len(b.TurnoversNeeded); n > 0 {
		parts = append(parts, fmt.Sprintf("%d turnover%s", n, plural(n)))
	}
	switch {
	case len(parts) > 0:
		return fmt.Sprintf("Today: %s. %d action items.", join(parts), len(b.Actions))
	case len(b.ActiveStays) > 0:
		return fmt.Sprintf("Quiet day. %d active stays.", len(b.ActiveStays))
	default:
		return "All clear today."
	}
}

func displayName(p store.Property) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func join(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
