package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

var testProp = store.Property{
	ID:          "prop_001",
	Name:        "Downtown Loft",
	NightlyRate: 150,
	CleaningFee: 75,
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInferStatus(t *testing.T) {
	checkIn := day(2024, 6, 1)
	checkOut := day(2024, 6, 5)

	cases := []struct {
		today time.Time
		want  store.BookingStatus
	}{
		{day(2024, 5, 1), store.StatusConfirmed},
		{day(2024, 6, 3), store.StatusCheckedIn},
		{day(2024, 6, 1), store.StatusCheckedIn},
		{day(2024, 6, 5), store.StatusCheckedOut},
		{day(2024, 6, 10), store.StatusCheckedOut},
	}
	for _, c := range cases {
		if got := InferStatus(checkIn, checkOut, c.today); got != c.want {
			t.Errorf("InferStatus(today=%s) = %s, want %s", c.today.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	// Half-cent cases use binary-exact inputs (eighths) so the rounding
	// behavior, not float representation, is what gets tested.
	cases := []struct {
		in   float64
		want float64
	}{
		{100.004, 100.00},
		{0.125, 0.13},
		{0.375, 0.38},
		{-0.125, -0.13},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalize_Payout(t *testing.T) {
	ex := Extraction{
		Kind:      KindReservation,
		Platform:  store.PlatformAirbnb,
		GuestName: "Jane Doe",
		Guests:    2,
		CheckIn:   day(2026, 6, 1),
		CheckOut:  day(2026, 6, 4),
	}

	b, err := Normalize(ex, testProp, day(2026, 5, 1), DefaultFeeSchedule())
	if err != nil {
		t.Fatal(err)
	}
	if b.Nights != 3 {
		t.Errorf("nights = %d, want 3", b.Nights)
	}
	// 3 × 150 + 75 = 525 gross, 3% airbnb fee
	if b.Gross != 525 {
		t.Errorf("gross = %v, want 525", b.Gross)
	}
	if b.PlatformFee != 15.75 {
		t.Errorf("fee = %v, want 15.75", b.PlatformFee)
	}
	if b.NetPayout != 509.25 {
		t.Errorf("net = %v, want 509.25", b.NetPayout)
	}
	if b.Status != store.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", b.Status)
	}
	if b.Source != store.SourceICalImport {
		t.Errorf("source = %s, want ical_import", b.Source)
	}
	if b.ID == "" {
		t.Error("expected surrogate id to be assigned")
	}
}

func TestNormalize_FeedAmountWins(t *testing.T) {
	ex := Extraction{
		Kind:     KindReservation,
		Platform: store.PlatformVRBO,
		CheckIn:  day(2026, 6, 1),
		CheckOut: day(2026, 6, 3),
		Gross:    400,
	}
	b, err := Normalize(ex, testProp, day(2026, 5, 1), DefaultFeeSchedule())
	if err != nil {
		t.Fatal(err)
	}
	if b.Gross != 400 {
		t.Errorf("gross = %v, want feed amount 400", b.Gross)
	}
	if b.NetPayout != 380 { // 5% vrbo fee
		t.Errorf("net = %v, want 380", b.NetPayout)
	}
}

func TestNormalize_UnknownPlatformDefaultRate(t *testing.T) {
	ex := Extraction{
		Kind:     KindUnrecognized,
		Platform: store.PlatformUnknown,
		CheckIn:  day(2026, 6, 1),
		CheckOut: day(2026, 6, 2),
		Gross:    100,
	}
	b, err := Normalize(ex, testProp, day(2026, 5, 1), DefaultFeeSchedule())
	if err != nil {
		t.Fatal(err)
	}
	if b.PlatformFee != 3 {
		t.Errorf("fee = %v, want default 3%% rate", b.PlatformFee)
	}
	if !b.NeedsReview {
		t.Error("unrecognized extraction should be flagged for review")
	}
}

func TestNormalize_RejectsNonPositiveNights(t *testing.T) {
	for _, checkOut := range []time.Time{day(2026, 6, 1), day(2026, 5, 30)} {
		ex := Extraction{
			Kind:     KindReservation,
			Platform: store.PlatformAirbnb,
			CheckIn:  day(2026, 6, 1),
			CheckOut: checkOut,
		}
		_, err := Normalize(ex, testProp, day(2026, 5, 1), DefaultFeeSchedule())
		if !errors.Is(err, ErrInvalidStay) {
			t.Errorf("Normalize(out=%s) err = %v, want ErrInvalidStay", checkOut.Format("2006-01-02"), err)
		}
	}
}

func TestNormalize_BlockedAlwaysBlocked(t *testing.T) {
	ex := Extraction{
		Kind:     KindBlocked,
		CheckIn:  day(2024, 6, 1),
		CheckOut: day(2024, 6, 5),
		Reason:   "Airbnb (Not available)",
	}
	// Today mid-stay would normally infer checked_in; blocked wins.
	b, err := Normalize(ex, testProp, day(2024, 6, 3), DefaultFeeSchedule())
	if err != nil {
		t.Fatal(err)
	}
	if b.Status != store.StatusBlocked {
		t.Errorf("status = %s, want blocked", b.Status)
	}
	if b.Gross != 0 || b.NetPayout != 0 {
		t.Errorf("blocked ranges must carry no revenue, got gross=%v net=%v", b.Gross, b.NetPayout)
	}
}
