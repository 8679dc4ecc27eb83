package api

import (
	"net/http"
	"time"

	"github.com/hostledger/hostledger/internal/analytics"
	httperr "github.com/hostledger/hostledger/internal/http/errors"
)

// PropertyMetrics reports revenue and occupancy for one property within a
// window. Defaults to the current calendar year.
func (h *Handler) PropertyMetrics(w http.ResponseWriter, r *http.Request) {
	prop := h.loadProperty(w, r)
	if prop == nil {
		return
	}
	today := h.today()
	start := dateParam(r, "start", time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC))
	end := dateParam(r, "end", time.Date(today.Year(), 12, 31, 0, 0, 0, 0, time.UTC))

	bookings, err := h.store.Bookings.ListByProperty(r.Context(), prop.ID)
	if err != nil {
		httperr.InternalError(w, r, err, "list bookings")
		return
	}
	respondJSON(w, http.StatusOK, analytics.ComputePropertyMetrics(bookings, prop.ID, start, end))
}

// PortfolioMetrics rolls metrics up across all properties.
func (h *Handler) PortfolioMetrics(w http.ResponseWriter, r *http.Request) {
	today := h.today()
	start := dateParam(r, "start", time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC))
	end := dateParam(r, "end", time.Date(today.Year(), 12, 31, 0, 0, 0, 0, time.UTC))

	properties, err := h.store.Properties.List(r.Context())
	if err != nil {
		httperr.InternalError(w, r, err, "list properties")
		return
	}
	bookings, err := h.store.Bookings.List(r.Context())
	if err != nil {
		httperr.InternalError(w, r, err, "list bookings")
		return
	}
	respondJSON(w, http.StatusOK, analytics.ComputePortfolioMetrics(bookings, properties, start, end))
}

// Gaps reports unbooked future nights and last-minute pricing suggestions.
func (h *Handler) Gaps(w http.ResponseWriter, r *http.Request) {
	prop := h.loadProperty(w, r)
	if prop == nil {
		return
	}
	lookahead := int(floatParam(r, "days", 60))
	if lookahead < 1 || lookahead > 365 {
		lookahead = 60
	}

	bookings, err := h.store.Bookings.ListByProperty(r.Context(), prop.ID)
	if err != nil {
		httperr.InternalError(w, r, err, "list bookings")
		return
	}
	today := h.today()
	respondJSON(w, http.StatusOK, map[string]any{
		"gaps":        analytics.GapNights(bookings, prop.ID, today, lookahead),
		"suggestions": analytics.SuggestPricing(bookings, *prop, today, lookahead),
	})
}

// Proforma projects investment returns. Annual revenue defaults to a
// trailing-year actual and can be overridden by query param, as can the
// vacancy rate.
func (h *Handler) Proforma(w http.ResponseWriter, r *http.Request) {
	prop := h.loadProperty(w, r)
	if prop == nil {
		return
	}

	today := h.today()
	revenue := floatParam(r, "annual_revenue", 0)
	if revenue == 0 {
		bookings, err := h.store.Bookings.ListByProperty(r.Context(), prop.ID)
		if err != nil {
			httperr.InternalError(w, r, err, "list bookings")
			return
		}
		m := analytics.ComputePropertyMetrics(bookings, prop.ID, today.AddDate(-1, 0, 0), today)
		revenue = m.TotalRevenue
	}
	vacancy := floatParam(r, "vacancy_rate", 0.25)

	year := yearParam(r, today.Year())
	expenses, err := h.store.Expenses.ListByYear(r.Context(), year)
	if err != nil {
		httperr.InternalError(w, r, err, "list expenses")
		return
	}
	opex := map[string]float64{}
	for _, e := range expenses {
		if e.PropertyID != "" && e.PropertyID != prop.ID {
			continue
		}
		opex[e.Category] += e.Amount
	}

	respondJSON(w, http.StatusOK, analytics.ComputeProforma(*prop, revenue, opex, vacancy))
}

// ScheduleE returns the Schedule E worksheet for one property and tax year.
func (h *Handler) ScheduleE(w http.ResponseWriter, r *http.Request) {
	prop := h.loadProperty(w, r)
	if prop == nil {
		return
	}
	year := yearParam(r, h.today().Year())

	bookings, err := h.store.Bookings.ListByProperty(r.Context(), prop.ID)
	if err != nil {
		httperr.InternalError(w, r, err, "list bookings")
		return
	}
	expenses, err := h.store.Expenses.ListByYear(r.Context(), year)
	if err != nil {
		httperr.InternalError(w, r, err, "list expenses")
		return
	}
	respondJSON(w, http.StatusOK, analytics.ComputeScheduleE(*prop, bookings, expenses, year))
}
