package feed

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/hostledger/hostledger/internal/store"
)

// ErrInvalidStay rejects candidates whose dates do not span at least one
// night. They are counted in the import report, never inserted.
var ErrInvalidStay = errors.New("check-out must be after check-in")

// FeeSchedule maps platforms to their commission rate. Unknown platforms
// fall back to DefaultRate.
type FeeSchedule struct {
	Rates       map[store.Platform]float64
	DefaultRate float64
}

// DefaultFeeSchedule reflects typical host-side commission rates.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		Rates: map[store.Platform]float64{
			store.PlatformAirbnb:     0.03,
			store.PlatformVRBO:       0.05,
			store.PlatformBookingCom: 0.15,
		},
		DefaultRate: 0.03,
	}
}

// Rate returns the commission rate for a platform.
func (s FeeSchedule) Rate(p store.Platform) float64 {
	if r, ok := s.Rates[p]; ok {
		return r
	}
	return s.DefaultRate
}

// Normalize converts an extraction into a booking for the target property.
// Status is a pure function of the stay dates and today; gross falls back
// to the property's default nightly rate when the feed carries no amount.
func Normalize(ex Extraction, prop store.Property, today time.Time, fees FeeSchedule) (store.Booking, error) {
	nights := int(ex.CheckOut.Sub(ex.CheckIn).Hours() / 24)
	if nights < 1 {
		return store.Booking{}, ErrInvalidStay
	}

	b := store.Booking{
		ID:         uuid.NewString(),
		PropertyID: prop.ID,
		CheckIn:    ex.CheckIn,
		CheckOut:   ex.CheckOut,
		Nights:     nights,
		Source:     store.SourceICalImport,
		CreatedAt:  today,
	}

	if ex.Kind == KindBlocked {
		b.Status = store.StatusBlocked
		b.Platform = store.PlatformUnknown
		b.GuestName = ""
		b.Notes = blockNotes(ex)
		return b, nil
	}

	b.Status = InferStatus(ex.CheckIn, ex.CheckOut, today)
	b.Platform = ex.Platform
	b.GuestName = ex.GuestName
	b.GuestPhone = ex.GuestPhone
	b.Guests = ex.Guests
	b.NeedsReview = ex.Kind == KindUnrecognized

	gross := ex.Gross
	if gross <= 0 {
		gross = prop.NightlyRate*float64(nights) + prop.CleaningFee
	}
	fee := gross * fees.Rate(ex.Platform)
	b.Gross = round2(gross)
	b.PlatformFee = round2(fee)
	b.NetPayout = round2(gross - fee)

	if ex.UID != "" {
		b.Notes = fmt.Sprintf("Imported from iCal. UID: %s", truncate(ex.UID, 40))
	} else {
		b.Notes = "Imported from iCal"
	}
	return b, nil
}

// InferStatus derives lifecycle status from the stay dates relative to
// today: upcoming stays are confirmed, in-progress stays are checked in,
// past stays are checked out.
func InferStatus(checkIn, checkOut, today time.Time) store.BookingStatus {
	today = dateOnly(today)
	switch {
	case today.Before(dateOnly(checkIn)):
		return store.StatusConfirmed
	case today.Before(dateOnly(checkOut)):
		return store.StatusCheckedIn
	default:
		return store.StatusCheckedOut
	}
}

func blockNotes(ex Extraction) string {
	if ex.Reason != "" {
		return "Blocked: " + ex.Reason
	}
	return "Blocked via iCal feed"
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
