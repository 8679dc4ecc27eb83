package analytics

import (
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

// ScheduleE maps a property's year to the IRS Schedule E line items.
type ScheduleE struct {
	PropertyAddress string  `json:"property_address"`
	FairRentalDays  int     `json:"fair_rental_days"`
	Rents           float64 `json:"line_3_rents"`
	Advertising     float64 `json:"line_5_advertising"`
	Auto            float64 `json:"line_6_auto"`
	Cleaning        float64 `json:"line_7_cleaning"`
	Commissions     float64 `json:"line_8_commissions"`
	Insurance       float64 `json:"line_9_insurance"`
	Legal           float64 `json:"line_10_legal"`
	MortgageInt     float64 `json:"line_12_mortgage_int"`
	Repairs         float64 `json:"line_14_repairs"`
	Supplies        float64 `json:"line_15_supplies"`
	Taxes           float64 `json:"line_16_taxes"`
	Utilities       float64 `json:"line_17_utilities"`
	Depreciation    float64 `json:"line_18_depreciation"`
	Other           float64 `json:"line_19_other"`
	TotalExpenses   float64 `json:"total_expenses"`
	NetIncome       float64 `json:"net_income"`
}

// expenseLine routes an expense category to its Schedule E line. Unmapped
// categories land on line 19 (other).
func (s *ScheduleE) expenseLine(category string) *float64 {
	switch category {
	case "Advertising/Marketing":
		return &s.Advertising
	case "Travel (Property Visits)", "Vehicle/Mileage":
		return &s.Auto
	case "Cleaning":
		return &s.Cleaning
	case "Platform Fees":
		return &s.Commissions
	case "Insurance":
		return &s.Insurance
	case "Professional Services (Accounting)", "Professional Services (Legal)":
		return &s.Legal
	case "Mortgage Interest":
		return &s.MortgageInt
	case "Maintenance/Repairs":
		return &s.Repairs
	case "Supplies (Guest)", "Supplies (Cleaning)":
		return &s.Supplies
	case "Property Tax":
		return &s.Taxes
	case "Utilities (Electric)", "Utilities (Gas)", "Utilities (Water/Sewer)",
		"Utilities (Internet/Cable)", "Utilities (Trash)":
		return &s.Utilities
	case "Depreciation":
		return &s.Depreciation
	default:
		return &s.Other
	}
}

// ComputeScheduleE sums the property's rental days, gross rents and mapped
// expenses for a tax year. Rents follow the check-in year; rental days are
// clipped to the year's boundaries.
func ComputeScheduleE(prop store.Property, bookings []store.Booking, expenses []store.Expense, taxYear int) ScheduleE {
	s := ScheduleE{
		PropertyAddress: prop.Address,
		Insurance:       round2(prop.InsuranceAnnual),
		Taxes:           round2(prop.PropertyTaxAnnual),
	}

	yearStart := time.Date(taxYear, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(taxYear+1, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, b := range bookings {
		if b.PropertyID != prop.ID || b.Status == store.StatusCancelled || b.Status == store.StatusBlocked {
			continue
		}
		s.FairRentalDays += overlapNights(b.CheckIn, b.CheckOut, yearStart, yearEnd)
		if b.CheckIn.Year() == taxYear {
			s.Rents += b.NetPayout
		}
	}
	s.Rents = round2(s.Rents)

	for _, e := range expenses {
		if e.PropertyID != prop.ID || e.Date.Year() != taxYear || !e.TaxDeductible {
			continue
		}
		*s.expenseLine(e.Category) += e.Amount
	}

	s.TotalExpenses = round2(s.Advertising + s.Auto + s.Cleaning + s.Commissions +
		s.Insurance + s.Legal + s.MortgageInt + s.Repairs + s.Supplies +
		s.Taxes + s.Utilities + s.Depreciation + s.Other)
	s.NetIncome = round2(s.Rents - s.TotalExpenses)
	return s
}
