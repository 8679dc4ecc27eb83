package analytics

import (
	"testing"
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputePropertyMetrics(t *testing.T) {
	bookings := []store.Booking{
		{PropertyID: "p1", CheckIn: day(2026, 6, 1), CheckOut: day(2026, 6, 5), NetPayout: 400, Status: store.StatusCheckedOut, Rating: 5},
		{PropertyID: "p1", CheckIn: day(2026, 6, 10), CheckOut: day(2026, 6, 12), NetPayout: 200, Status: store.StatusConfirmed},
		// Cancelled and blocked records never count.
		{PropertyID: "p1", CheckIn: day(2026, 6, 20), CheckOut: day(2026, 6, 25), NetPayout: 999, Status: store.StatusCancelled},
		{PropertyID: "p1", CheckIn: day(2026, 6, 26), CheckOut: day(2026, 6, 28), Status: store.StatusBlocked},
		// Different property.
		{PropertyID: "p2", CheckIn: day(2026, 6, 1), CheckOut: day(2026, 6, 3), NetPayout: 300, Status: store.StatusConfirmed},
	}

	m := ComputePropertyMetrics(bookings, "p1", day(2026, 6, 1), day(2026, 7, 1))
	if m.NightsBooked != 6 {
		t.Errorf("nights = %d, want 6", m.NightsBooked)
	}
	if m.TotalRevenue != 600 {
		t.Errorf("revenue = %v, want 600", m.TotalRevenue)
	}
	if m.TotalBookings != 2 {
		t.Errorf("bookings = %d, want 2", m.TotalBookings)
	}
	if m.OccupancyRate != 20.0 {
		t.Errorf("occupancy = %v, want 20.0 (6/30 nights)", m.OccupancyRate)
	}
	if m.AvgRating != 5 {
		t.Errorf("avg rating = %v, want 5", m.AvgRating)
	}
}

func TestComputePropertyMetrics_ProratesAcrossWindow(t *testing.T) {
	bookings := []store.Booking{
		// 4-night stay straddling the window start: 2 nights inside.
		{PropertyID: "p1", CheckIn: day(2026, 5, 30), CheckOut: day(2026, 6, 3), NetPayout: 400, Status: store.StatusCheckedOut},
	}
	m := ComputePropertyMetrics(bookings, "p1", day(2026, 6, 1), day(2026, 7, 1))
	if m.NightsBooked != 2 {
		t.Errorf("nights = %d, want 2", m.NightsBooked)
	}
	if m.TotalRevenue != 200 {
		t.Errorf("revenue = %v, want prorated 200", m.TotalRevenue)
	}
}

func TestComputePortfolioMetrics_SkipsIdleInAverages(t *testing.T) {
	properties := []store.Property{{ID: "p1"}, {ID: "p2"}}
	bookings := []store.Booking{
		{PropertyID: "p1", CheckIn: day(2026, 6, 1), CheckOut: day(2026, 6, 16), NetPayout: 1500, Status: store.StatusCheckedOut},
	}
	pm := ComputePortfolioMetrics(bookings, properties, day(2026, 6, 1), day(2026, 7, 1))
	if pm.TotalRevenue != 1500 {
		t.Errorf("total revenue = %v, want 1500", pm.TotalRevenue)
	}
	// p2 has no activity; the occupancy average reflects p1 alone.
	if pm.AvgOccupancy != 50.0 {
		t.Errorf("avg occupancy = %v, want 50.0", pm.AvgOccupancy)
	}
	if len(pm.PerProperty) != 2 {
		t.Errorf("per property entries = %d, want 2", len(pm.PerProperty))
	}
}

func TestGapNights(t *testing.T) {
	today := day(2026, 6, 1)
	bookings := []store.Booking{
		{PropertyID: "p1", CheckIn: day(2026, 6, 3), CheckOut: day(2026, 6, 6), Status: store.StatusConfirmed},
		{PropertyID: "p1", CheckIn: day(2026, 6, 6), CheckOut: day(2026, 6, 10), Status: store.StatusConfirmed},
		{PropertyID: "p1", CheckIn: day(2026, 6, 15), CheckOut: day(2026, 6, 20), Status: store.StatusConfirmed},
	}

	gaps := GapNights(bookings, "p1", today, 30)
	if len(gaps) != 3 {
		t.Fatalf("gaps = %d, want 3: %+v", len(gaps), gaps)
	}
	if gaps[0].Nights != 2 || !gaps[0].Start.Equal(today) {
		t.Errorf("first gap = %+v, want 2 nights from today", gaps[0])
	}
	if gaps[1].Nights != 5 || !gaps[1].Start.Equal(day(2026, 6, 10)) {
		t.Errorf("second gap = %+v, want 5 nights from Jun 10", gaps[1])
	}
	if gaps[2].Nights != 11 || !gaps[2].End.Equal(day(2026, 7, 1)) {
		t.Errorf("trailing gap = %+v, want 11 nights to window end", gaps[2])
	}
}

func TestSuggestPricing(t *testing.T) {
	prop := store.Property{ID: "p1", NightlyRate: 200}
	today := day(2026, 6, 1)
	bookings := []store.Booking{
		// Leaves a 2-night gap starting today, then a long vacancy.
		{PropertyID: "p1", CheckIn: day(2026, 6, 3), CheckOut: day(2026, 6, 4), Status: store.StatusConfirmed},
	}

	suggestions := SuggestPricing(bookings, prop, today, 14)
	if len(suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2: %+v", len(suggestions), suggestions)
	}
	if suggestions[0].Type != "discount" || suggestions[0].SuggestedRate != 170 {
		t.Errorf("short gap suggestion = %+v, want 15%% discount to 170", suggestions[0])
	}
	if suggestions[1].Type != "urgent" || suggestions[1].SuggestedRate != 150 {
		t.Errorf("long vacancy suggestion = %+v, want drop to 150", suggestions[1])
	}
}
