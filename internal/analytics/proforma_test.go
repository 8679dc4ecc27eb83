package analytics

import (
	"testing"

	"github.com/hostledger/hostledger/internal/store"
)

var loft = store.Property{
	ID:                "p1",
	Address:           "456 Main St, Unit 3A",
	PurchasePrice:     420000,
	MortgageMonthly:   2100,
	PropertyTaxAnnual: 5250,
	InsuranceAnnual:   1800,
	HOAMonthly:        350,
	DownPayment:       84000,
	ClosingCosts:      12600,
	FurnishingCost:    15000,
	StartupCosts:      3000,
}

func TestComputeProforma(t *testing.T) {
	opex := map[string]float64{"Cleaning": 3400, "Supplies": 1200, "Utilities": 2400}
	p := ComputeProforma(loft, 45000, opex, 0.25)

	if p.VacancyLoss != 11250 {
		t.Errorf("vacancy loss = %v, want 11250", p.VacancyLoss)
	}
	if p.EffectiveGross != 33750 {
		t.Errorf("egi = %v, want 33750", p.EffectiveGross)
	}
	// opex = 7000 variable + 5250 + 1800 + 4200 fixed = 18250
	if p.TotalOpex != 18250 {
		t.Errorf("opex = %v, want 18250", p.TotalOpex)
	}
	if p.NOI != 15500 {
		t.Errorf("noi = %v, want 15500", p.NOI)
	}
	// cash flow = 15500 - 25200 debt service
	if p.AnnualCashFlow != -9700 {
		t.Errorf("cash flow = %v, want -9700", p.AnnualCashFlow)
	}
	if p.TotalInvestment != 114600 {
		t.Errorf("total investment = %v, want 114600", p.TotalInvestment)
	}
	if p.CapRate != 3.69 {
		t.Errorf("cap rate = %v, want 3.69", p.CapRate)
	}
	if p.DSCR != 0.62 {
		t.Errorf("dscr = %v, want 0.62", p.DSCR)
	}
}

func TestComputeProforma_ZeroDenominators(t *testing.T) {
	p := ComputeProforma(store.Property{}, 0, nil, 0.25)
	if p.CapRate != 0 || p.CashOnCash != 0 || p.DSCR != 0 || p.BreakEvenOcc != 0 {
		t.Errorf("zero-input proforma should report zero ratios, got %+v", p)
	}
}

func TestComputeScheduleE(t *testing.T) {
	bookings := []store.Booking{
		{PropertyID: "p1", CheckIn: day(2026, 6, 1), CheckOut: day(2026, 6, 5), NetPayout: 500, Status: store.StatusCheckedOut},
		{PropertyID: "p1", CheckIn: day(2026, 12, 30), CheckOut: day(2027, 1, 2), NetPayout: 300, Status: store.StatusConfirmed},
		{PropertyID: "p1", CheckIn: day(2026, 7, 1), CheckOut: day(2026, 7, 3), NetPayout: 250, Status: store.StatusCancelled},
	}
	expenses := []store.Expense{
		{PropertyID: "p1", Date: day(2026, 6, 6), Category: "Cleaning", Amount: 85, TaxDeductible: true},
		{PropertyID: "p1", Date: day(2026, 6, 7), Category: "Supplies (Guest)", Amount: 45, TaxDeductible: true},
		{PropertyID: "p1", Date: day(2026, 6, 8), Category: "Utilities (Electric)", Amount: 120, TaxDeductible: true},
		{PropertyID: "p1", Date: day(2026, 6, 9), Category: "Pest Control", Amount: 60, TaxDeductible: true},
		{PropertyID: "p1", Date: day(2025, 6, 9), Category: "Cleaning", Amount: 999, TaxDeductible: true},
		{PropertyID: "p1", Date: day(2026, 6, 10), Category: "Cleaning", Amount: 50, TaxDeductible: false},
	}

	s := ComputeScheduleE(loft, bookings, expenses, 2026)
	// 4 nights + 2 nights of the year-straddling stay inside 2026.
	if s.FairRentalDays != 6 {
		t.Errorf("fair rental days = %d, want 6", s.FairRentalDays)
	}
	// Both stays check in during 2026; the cancelled one is excluded.
	if s.Rents != 800 {
		t.Errorf("rents = %v, want 800", s.Rents)
	}
	if s.Cleaning != 85 {
		t.Errorf("cleaning = %v, want 85 (other years and non-deductible excluded)", s.Cleaning)
	}
	if s.Supplies != 45 {
		t.Errorf("supplies = %v, want 45", s.Supplies)
	}
	if s.Utilities != 120 {
		t.Errorf("utilities = %v, want 120", s.Utilities)
	}
	if s.Other != 60 {
		t.Errorf("other = %v, want 60 (unmapped category)", s.Other)
	}
	wantTotal := 85 + 45 + 120 + 60 + loft.InsuranceAnnual + loft.PropertyTaxAnnual
	if s.TotalExpenses != wantTotal {
		t.Errorf("total expenses = %v, want %v", s.TotalExpenses, wantTotal)
	}
	if s.NetIncome != 800-wantTotal {
		t.Errorf("net income = %v, want %v", s.NetIncome, 800-wantTotal)
	}
}
