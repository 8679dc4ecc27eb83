package analytics

import "github.com/hostledger/hostledger/internal/store"

// Proforma is the investment analysis for one property over a year.
type Proforma struct {
	GrossRevenue      float64 `json:"gross_revenue"`
	VacancyLoss       float64 `json:"vacancy_loss"`
	VacancyRate       float64 `json:"vacancy_rate"`
	EffectiveGross    float64 `json:"effective_gross"`
	TotalOpex         float64 `json:"total_opex"`
	NOI               float64 `json:"noi"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	AnnualCashFlow    float64 `json:"annual_cash_flow"`
	MonthlyCashFlow   float64 `json:"monthly_cash_flow"`
	TotalInvestment   float64 `json:"total_investment"`
	CapRate           float64 `json:"cap_rate"`
	CashOnCash        float64 `json:"cash_on_cash"`
	DSCR              float64 `json:"dscr"`
	GrossYield        float64 `json:"gross_yield"`
	ExpenseRatio      float64 `json:"expense_ratio"`
	BreakEvenOcc      float64 `json:"break_even_occ"`
}

// ComputeProforma runs the standard underwriting math. Operating expenses
// are the variable costs by category; fixed carry (tax, insurance, HOA)
// comes from the property record. Ratios with zero denominators report 0.
func ComputeProforma(prop store.Property, annualRevenue float64, operatingExpenses map[string]float64, vacancyRate float64) Proforma {
	mortgageYr := prop.MortgageMonthly * 12

	var opex float64
	for _, v := range operatingExpenses {
		opex += v
	}
	opex += prop.PropertyTaxAnnual + prop.InsuranceAnnual + prop.HOAMonthly*12

	vacancy := annualRevenue * vacancyRate
	egi := annualRevenue - vacancy
	noi := egi - opex
	cashFlow := noi - mortgageYr
	totalInv := prop.TotalInvestment()

	p := Proforma{
		GrossRevenue:      round2(annualRevenue),
		VacancyLoss:       round2(vacancy),
		VacancyRate:       vacancyRate,
		EffectiveGross:    round2(egi),
		TotalOpex:         round2(opex),
		NOI:               round2(noi),
		AnnualDebtService: round2(mortgageYr),
		AnnualCashFlow:    round2(cashFlow),
		MonthlyCashFlow:   round2(cashFlow / 12),
		TotalInvestment:   round2(totalInv),
	}
	if prop.PurchasePrice > 0 {
		p.CapRate = round2(noi / prop.PurchasePrice * 100)
		p.GrossYield = round2(annualRevenue / prop.PurchasePrice * 100)
	}
	if totalInv > 0 {
		p.CashOnCash = round2(cashFlow / totalInv * 100)
	}
	if mortgageYr > 0 {
		p.DSCR = round2(noi / mortgageYr)
	}
	if egi > 0 {
		p.ExpenseRatio = round1(opex / egi * 100)
	}
	if annualRevenue > 0 {
		p.BreakEvenOcc = round1((opex + mortgageYr) / annualRevenue * 100)
	}
	return p
}
