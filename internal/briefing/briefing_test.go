package briefing

import (
	"strings"
	"testing"
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProperties() []store.Property {
	return []store.Property{
		{ID: "p1", Name: "Maple Cottage", Nickname: "Maple", Active: true},
		{ID: "p2", Name: "Pine Loft", Active: true},
		{ID: "p3", Name: "Retired Unit", Active: false},
	}
}

func TestBuildCheckInsAndTurnovers(t *testing.T) {
	today := day(2024, 6, 15)
	bookings := []store.Booking{
		{ID: "b1", PropertyID: "p1", GuestName: "Alice", CheckIn: day(2024, 6, 15), CheckOut: day(2024, 6, 18), Nights: 3, Status: store.StatusConfirmed, NetPayout: 400},
		{ID: "b2", PropertyID: "p2", GuestName: "Bob", CheckIn: day(2024, 6, 12), CheckOut: day(2024, 6, 15), Nights: 3, Status: store.StatusCheckedIn, NetPayout: 300},
	}

	b := Build(testProperties(), bookings, nil, today)

	if len(b.CheckInsToday) != 1 || b.CheckInsToday[0].PropertyName != "Maple" {
		t.Fatalf("check-ins today = %+v", b.CheckInsToday)
	}
	if len(b.CheckOutsToday) != 1 || b.CheckOutsToday[0].Booking.GuestName != "Bob" {
		t.Fatalf("checkouts today = %+v", b.CheckOutsToday)
	}
	if len(b.TurnoversNeeded) != 1 {
		t.Fatalf("turnovers = %d, want 1", len(b.TurnoversNeeded))
	}
	if !strings.Contains(b.Summary, "1 check-in") || !strings.Contains(b.Summary, "1 turnover") {
		t.Errorf("summary = %q", b.Summary)
	}
	// High-priority actions sort first.
	if b.Actions[0].Priority != "high" {
		t.Errorf("first action priority = %s", b.Actions[0].Priority)
	}
}

func TestBuildActiveStaysAndOccupancy(t *testing.T) {
	today := day(2024, 6, 15)
	bookings := []store.Booking{
		{ID: "b1", PropertyID: "p1", GuestName: "Alice", CheckIn: day(2024, 6, 13), CheckOut: day(2024, 6, 17), Nights: 4, Status: store.StatusCheckedIn},
	}

	b := Build(testProperties(), bookings, nil, today)

	if len(b.ActiveStays) != 1 {
		t.Fatalf("active stays = %d, want 1", len(b.ActiveStays))
	}
	if got := b.ActiveStays[0].NightsRemaining; got != 2 {
		t.Errorf("nights remaining = %d, want 2", got)
	}
	// One of two active properties occupied tonight.
	if b.OccupancyTonight != 50 {
		t.Errorf("occupancy = %v, want 50", b.OccupancyTonight)
	}
	if len(b.VacantTonight) != 1 || b.VacantTonight[0] != "p2" {
		t.Errorf("vacant = %v", b.VacantTonight)
	}
}

func TestBuildActiveStaysIncludeCheckInDay(t *testing.T) {
	today := day(2024, 6, 15)
	bookings := []store.Booking{
		{ID: "b1", PropertyID: "p1", GuestName: "Alice", CheckIn: today, CheckOut: day(2024, 6, 18), Nights: 3, Status: store.StatusConfirmed},
	}

	b := Build(testProperties(), bookings, nil, today)

	// The arrival is both a check-in and an in-house stay tonight.
	if len(b.CheckInsToday) != 1 {
		t.Fatalf("check-ins today = %d, want 1", len(b.CheckInsToday))
	}
	if len(b.ActiveStays) != 1 {
		t.Fatalf("active stays = %d, want 1", len(b.ActiveStays))
	}
	if got := b.ActiveStays[0].NightsRemaining; got != 3 {
		t.Errorf("nights remaining = %d, want 3", got)
	}
}

func TestBuildMidStayCheck(t *testing.T) {
	// 6-night stay, halfway point is check-in + 3 days.
	bookings := []store.Booking{
		{ID: "b1", PropertyID: "p1", GuestName: "Carol", CheckIn: day(2024, 6, 12), CheckOut: day(2024, 6, 18), Nights: 6, Status: store.StatusCheckedIn},
	}
	b := Build(testProperties(), bookings, nil, day(2024, 6, 15))

	found := false
	for _, a := range b.Actions {
		if a.Type == "message" && strings.Contains(a.Text, "Mid-stay") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected mid-stay check action, got %+v", b.Actions)
	}
}

func TestBuildSkipsCancelledAndBlocked(t *testing.T) {
	today := day(2024, 6, 15)
	bookings := []store.Booking{
		{ID: "b1", PropertyID: "p1", CheckIn: today, CheckOut: day(2024, 6, 17), Status: store.StatusCancelled},
		{ID: "b2", PropertyID: "p2", CheckIn: day(2024, 6, 14), CheckOut: day(2024, 6, 16), Status: store.StatusBlocked},
	}

	b := Build(testProperties(), bookings, nil, today)

	if len(b.CheckInsToday) != 0 || len(b.Actions) != 0 {
		t.Fatalf("cancelled/blocked produced actions: %+v", b.Actions)
	}
	// Blocked ranges still count toward occupancy.
	if b.OccupancyTonight != 50 {
		t.Errorf("occupancy = %v, want 50", b.OccupancyTonight)
	}
}

func TestBuildMaintenanceActions(t *testing.T) {
	items := []store.MaintenanceItem{
		{ID: "m1", PropertyID: "p1", Title: "Water heater leak", Priority: "urgent", Status: "open"},
		{ID: "m2", PropertyID: "p2", Title: "Squeaky door", Priority: "low", Status: "open"},
		{ID: "m3", PropertyID: "p1", Title: "Resolved item", Priority: "urgent", Status: "resolved"},
	}

	b := Build(testProperties(), nil, items, day(2024, 6, 15))

	if len(b.Actions) != 1 {
		t.Fatalf("actions = %+v, want only the urgent open item", b.Actions)
	}
	if b.Actions[0].Priority != "high" || !strings.Contains(b.Actions[0].Text, "Water heater") {
		t.Errorf("action = %+v", b.Actions[0])
	}
}

func TestBuildRevenueThisMonth(t *testing.T) {
	bookings := []store.Booking{
		{ID: "b1", PropertyID: "p1", CheckIn: day(2024, 6, 2), CheckOut: day(2024, 6, 4), Status: store.StatusCheckedOut, NetPayout: 500},
		{ID: "b2", PropertyID: "p1", CheckIn: day(2024, 5, 28), CheckOut: day(2024, 6, 1), Status: store.StatusCheckedOut, NetPayout: 900},
	}

	b := Build(testProperties(), bookings, nil, day(2024, 6, 15))

	if b.RevenueThisMonth != 500 {
		t.Errorf("revenue this month = %v, want 500", b.RevenueThisMonth)
	}
}

func TestBuildQuietDaySummary(t *testing.T) {
	b := Build(testProperties(), nil, nil, day(2024, 6, 15))
	if b.Summary != "All clear today." {
		t.Errorf("summary = %q", b.Summary)
	}
}
