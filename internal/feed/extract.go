// Package feed turns platform availability feeds into booking records. It
// covers the import pipeline end to end: classifying raw calendar events by
// platform, extracting guest details, normalizing candidates into bookings
// and suppressing duplicates against the existing collection.
package feed

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hostledger/hostledger/internal/ical"
	"github.com/hostledger/hostledger/internal/store"
)

// Kind classifies the outcome of extracting one calendar event.
type Kind int

const (
	// KindReservation is a guest stay attributed to a known platform.
	KindReservation Kind = iota
	// KindBlocked is an owner block or platform unavailability range.
	KindBlocked
	// KindUnrecognized is a reservation whose platform could not be
	// identified. It is still imported, flagged for review.
	KindUnrecognized
)

// Extraction is the classified content of one calendar event.
type Extraction struct {
	Kind       Kind
	Platform   store.Platform
	GuestName  string
	GuestPhone string
	Guests     int
	CheckIn    time.Time
	CheckOut   time.Time
	Gross      float64 // 0 when the feed carries no amount
	UID        string
	Reason     string // blocked events keep the original summary
}

// matcher is one classification rule: a predicate plus extractor over a raw
// event. Rules are tried in a fixed priority order; the first hit wins.
type matcher struct {
	name  string
	apply func(ev ical.RawEvent) (Extraction, bool)
}

// Rule order matters: block phrases are checked before any platform
// pattern, and the dash-separated VRBO/Booking.com summaries must be tried
// before the looser Airbnb heuristics.
var matchers = []matcher{
	{"blocked", matchBlocked},
	{"booking_com", matchBookingCom},
	{"vrbo", matchVRBO},
	{"airbnb", matchAirbnb},
}

var blockPhrases = []string{
	"not available",
	"owner block",
	"blocked",
	"closed",
	"unavailable",
}

var (
	guestCountRe = regexp.MustCompile(`(?i)(\d+)\s*guest`)
	phoneRe      = regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`)
	dashSummary  = regexp.MustCompile(`^(?i)(reserved|booked)\s*-\s*(.+)$`)
	bookingCom   = regexp.MustCompile(`^(?i)booking\.com\s*-\s*(.+)$`)
	confCodeRe   = regexp.MustCompile(`^(.*\S)\s*\((HM[A-Z0-9]+|[A-Z0-9]{8,})\)$`)
	amountRe     = regexp.MustCompile(`(?i)(?:total|payout|amount)[^\d$]*\$?\s*(\d+(?:\.\d{1,2})?)`)
)

// Extract classifies a raw event into exactly one extraction. Ambiguous
// events fall through to an unknown-platform reservation rather than
// failing; nothing is silently dropped.
func Extract(ev ical.RawEvent) Extraction {
	for _, m := range matchers {
		if ex, ok := m.apply(ev); ok {
			return ex
		}
	}
	name := strings.TrimSpace(ev.Summary)
	if name == "" {
		name = "Guest"
	}
	ex := reservation(ev, store.PlatformUnknown, name)
	ex.Kind = KindUnrecognized
	return ex
}

// reservation fills the fields shared by every reservation variant.
func reservation(ev ical.RawEvent, platform store.Platform, name string) Extraction {
	return Extraction{
		Kind:       KindReservation,
		Platform:   platform,
		GuestName:  name,
		GuestPhone: extractPhone(ev.Description),
		Guests:     extractGuestCount(ev.Description),
		CheckIn:    ev.Start,
		CheckOut:   ev.End,
		Gross:      extractAmount(ev.Description),
		UID:        ev.UID,
	}
}

func matchBlocked(ev ical.RawEvent) (Extraction, bool) {
	text := strings.ToLower(ev.Summary + " " + ev.Description)
	for _, phrase := range blockPhrases {
		if strings.Contains(text, phrase) {
			return Extraction{
				Kind:     KindBlocked,
				CheckIn:  ev.Start,
				CheckOut: ev.End,
				UID:      ev.UID,
				Reason:   strings.TrimSpace(ev.Summary),
			}, true
		}
	}
	return Extraction{}, false
}

func matchBookingCom(ev ical.RawEvent) (Extraction, bool) {
	m := bookingCom.FindStringSubmatch(strings.TrimSpace(ev.Summary))
	if m == nil {
		return Extraction{}, false
	}
	return reservation(ev, store.PlatformBookingCom, strings.TrimSpace(m[1])), true
}

func matchVRBO(ev ical.RawEvent) (Extraction, bool) {
	m := dashSummary.FindStringSubmatch(strings.TrimSpace(ev.Summary))
	if m == nil {
		return Extraction{}, false
	}
	name := strings.TrimSpace(m[2])
	if name == "" {
		name = "VRBO Guest"
	}
	return reservation(ev, store.PlatformVRBO, name), true
}

func matchAirbnb(ev ical.RawEvent) (Extraction, bool) {
	summary := strings.TrimSpace(ev.Summary)
	lower := strings.ToLower(summary)

	var name string
	switch {
	case lower == "reserved" || lower == "airbnb (reserved)":
		name = "Airbnb Guest"
	case confCodeRe.MatchString(summary):
		// "Jane Doe (HM8XYZ123)" — name before the confirmation code.
		name = strings.TrimSpace(confCodeRe.FindStringSubmatch(summary)[1])
	case summary != "" && hasAirbnbMarkers(ev.Description):
		name = summary
	default:
		return Extraction{}, false
	}

	return reservation(ev, store.PlatformAirbnb, name), true
}

// hasAirbnbMarkers reports whether a description carries the phone or guest
// count lines Airbnb embeds in reservation exports.
func hasAirbnbMarkers(description string) bool {
	lower := strings.ToLower(description)
	return strings.Contains(lower, "phone") || guestCountRe.MatchString(description)
}

func extractPhone(description string) string {
	for _, line := range strings.Split(description, "\n") {
		if !strings.Contains(strings.ToLower(line), "phone") {
			continue
		}
		if m := phoneRe.FindString(line); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractAmount pulls a dollar amount from "Total"/"Payout"/"Amount" lines
// when a feed carries one; most do not, and 0 means absent.
func extractAmount(description string) float64 {
	m := amountRe.FindStringSubmatch(description)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// extractGuestCount finds an "N guest(s)" marker; absent markers default to
// a single guest.
func extractGuestCount(description string) int {
	if m := guestCountRe.FindStringSubmatch(description); m != nil {
		n := 0
		for _, c := range m[1] {
			n = n*10 + int(c-'0')
		}
		if n > 0 {
			return n
		}
	}
	return 1
}
