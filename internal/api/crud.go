package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httperr "github.com/hostledger/hostledger/internal/http/errors"
	"github.com/hostledger/hostledger/internal/participation"
	"github.com/hostledger/hostledger/internal/store"
)

// Properties

type propertyRequest struct {
	Name              string  `json:"name"`
	Nickname          string  `json:"nickname"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	NightlyRate       float64 `json:"nightly_rate"`
	CleaningFee       float64 `json:"cleaning_fee"`
	MaxGuests         int     `json:"max_guests"`
	PurchasePrice     float64 `json:"purchase_price"`
	MortgageMonthly   float64 `json:"mortgage_monthly"`
	PropertyTaxAnnual float64 `json:"property_tax_annual"`
	InsuranceAnnual   float64 `json:"insurance_annual"`
	HOAMonthly        float64 `json:"hoa_monthly"`
	DownPayment       float64 `json:"down_payment"`
	ClosingCosts      float64 `json:"closing_costs"`
	FurnishingCost    float64 `json:"furnishing_cost"`
	StartupCosts      float64 `json:"startup_costs"`
}

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.store.Properties.List(r.Context())
	if err != nil {
		httperr.InternalError(w, r, err, "list properties")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"properties": props})
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	if req.Name == "" {
		httperr.BadRequestError(w, r, fmt.Errorf("missing name"), "name is required")
		return
	}
	if req.NightlyRate < 0 || req.CleaningFee < 0 {
		httperr.BadRequestError(w, r, fmt.Errorf("negative rate"), "rates must be non-negative")
		return
	}

	prop, err := h.store.Properties.Create(r.Context(), store.Property{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Nickname:          req.Nickname,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Zip:               req.Zip,
		NightlyRate:       req.NightlyRate,
		CleaningFee:       req.CleaningFee,
		MaxGuests:         req.MaxGuests,
		Active:            true,
		PurchasePrice:     req.PurchasePrice,
		MortgageMonthly:   req.MortgageMonthly,
		PropertyTaxAnnual: req.PropertyTaxAnnual,
		InsuranceAnnual:   req.InsuranceAnnual,
		HOAMonthly:        req.HOAMonthly,
		DownPayment:       req.DownPayment,
		ClosingCosts:      req.ClosingCosts,
		FurnishingCost:    req.FurnishingCost,
		StartupCosts:      req.StartupCosts,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "create property")
		return
	}
	respondJSON(w, http.StatusCreated, prop)
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	prop := h.loadProperty(w, r)
	if prop == nil {
		return
	}
	respondJSON(w, http.StatusOK, prop)
}

func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.Properties.Delete, "delete property")
}

// Bookings

type bookingRequest struct {
	PropertyID string  `json:"property_id"`
	GuestName  string  `json:"guest_name"`
	GuestPhone string  `json:"guest_phone"`
	Guests     int     `json:"guests"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Platform   string  `json:"platform"`
	Gross      float64 `json:"gross"`
	Rating     int     `json:"rating"`
	Notes      string  `json:"notes"`
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	var (
		bookings []store.Booking
		err      error
	)
	if pid := r.URL.Query().Get("property_id"); pid != "" {
		bookings, err = h.store.Bookings.ListByProperty(r.Context(), pid)
	} else {
		bookings, err = h.store.Bookings.List(r.Context())
	}
	if err != nil {
		httperr.InternalError(w, r, err, "list bookings")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		httperr.BadRequestError(w, r, err, "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		httperr.BadRequestError(w, r, err, "check_out must be YYYY-MM-DD")
		return
	}
	if !checkOut.After(checkIn) {
		httperr.BadRequestError(w, r, fmt.Errorf("check_out %s not after check_in %s", req.CheckOut, req.CheckIn), "check_out must be after check_in")
		return
	}
	prop, err := h.store.Properties.GetByID(r.Context(), req.PropertyID)
	if errors.Is(err, store.ErrNotFound) {
		httperr.BadRequestError(w, r, err, "unknown property_id")
		return
	}
	if err != nil {
		httperr.InternalError(w, r, err, "load property")
		return
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}
	gross := req.Gross
	if gross == 0 {
		gross = prop.NightlyRate*float64(nights) + prop.CleaningFee
	}

	booking, err := h.store.Bookings.Create(r.Context(), store.Booking{
		ID:         uuid.NewString(),
		PropertyID: prop.ID,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		Guests:     guests,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		Platform:   parsePlatform(req.Platform),
		Gross:      gross,
		NetPayout:  gross,
		Status:     store.StatusConfirmed,
		Source:     store.SourceManual,
		Rating:     req.Rating,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "create booking")
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.Bookings.Delete, "delete booking")
}

func parsePlatform(s string) store.Platform {
	switch store.Platform(s) {
	case store.PlatformAirbnb, store.PlatformVRBO, store.PlatformBookingCom:
		return store.Platform(s)
	default:
		return store.PlatformUnknown
	}
}

// Time entries

type timeEntryRequest struct {
	PropertyID  string  `json:"property_id"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
}

// validateTimeEntry checks the shared create/update fields, writing the 400
// itself on failure. Timer-closed entries cannot be dated in the future; a
// timer only stops in the present.
func (h *Handler) validateTimeEntry(w http.ResponseWriter, r *http.Request, req timeEntryRequest, source store.EntrySource) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequestError(w, r, err, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	if req.Hours <= 0 || req.Hours > 24 {
		httperr.BadRequestError(w, r, fmt.Errorf("hours %v out of range", req.Hours), "hours must be between 0 and 24")
		return time.Time{}, false
	}
	if req.Category != "" && !participation.ValidCategory(req.Category) {
		httperr.BadRequestError(w, r, fmt.Errorf("unknown category %q", req.Category), "unknown category")
		return time.Time{}, false
	}
	if source == store.EntryTimer && date.After(h.today()) {
		httperr.BadRequestError(w, r, fmt.Errorf("timer entry dated %s", req.Date), "timer entries cannot be dated in the future")
		return time.Time{}, false
	}
	return date, true
}

func parseEntrySource(s string) (store.EntrySource, bool) {
	switch store.EntrySource(s) {
	case store.EntryManual, store.EntryTimer:
		return store.EntrySource(s), true
	case "":
		return store.EntryManual, true
	default:
		return "", false
	}
}

func (h *Handler) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r, 0)
	var (
		entries []store.TimeEntry
		err     error
	)
	if year > 0 {
		entries, err = h.store.TimeEntries.ListByYear(r.Context(), year)
	} else {
		entries, err = h.store.TimeEntries.List(r.Context())
	}
	if err != nil {
		httperr.InternalError(w, r, err, "list time entries")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"time_entries": entries})
}

func (h *Handler) CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req timeEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	source, ok := parseEntrySource(req.Source)
	if !ok {
		httperr.BadRequestError(w, r, fmt.Errorf("unknown source %q", req.Source), "source must be manual or timer")
		return
	}
	date, ok := h.validateTimeEntry(w, r, req, source)
	if !ok {
		return
	}

	entry, err := h.store.TimeEntries.Create(r.Context(), store.TimeEntry{
		ID:          uuid.NewString(),
		PropertyID:  req.PropertyID,
		Date:        date,
		Category:    req.Category,
		Hours:       req.Hours,
		Description: req.Description,
		Source:      source,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "create time entry")
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// UpdateTimeEntry applies a correction edit to an existing entry. The
// original created_at survives; omitting source keeps the recorded one.
func (h *Handler) UpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.store.TimeEntries.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		httperr.NotFoundError(w, r)
		return
	}
	if err != nil {
		httperr.InternalError(w, r, err, "load time entry")
		return
	}

	var req timeEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	source := existing.Source
	if req.Source != "" {
		parsed, ok := parseEntrySource(req.Source)
		if !ok {
			httperr.BadRequestError(w, r, fmt.Errorf("unknown source %q", req.Source), "source must be manual or timer")
			return
		}
		source = parsed
	}
	date, ok := h.validateTimeEntry(w, r, req, source)
	if !ok {
		return
	}

	entry := store.TimeEntry{
		ID:          existing.ID,
		PropertyID:  req.PropertyID,
		Date:        date,
		Category:    req.Category,
		Hours:       req.Hours,
		Description: req.Description,
		Source:      source,
		CreatedAt:   existing.CreatedAt,
	}
	if err := h.store.TimeEntries.Update(r.Context(), entry); err != nil {
		httperr.InternalError(w, r, err, "update time entry")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (h *Handler) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.TimeEntries.Delete, "delete time entry")
}

// Expenses

type expenseRequest struct {
	PropertyID    string  `json:"property_id"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Vendor        string  `json:"vendor"`
	TaxDeductible *bool   `json:"tax_deductible"`
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r, 0)
	var (
		expenses []store.Expense
		err      error
	)
	if year > 0 {
		expenses, err = h.store.Expenses.ListByYear(r.Context(), year)
	} else {
		expenses, err = h.store.Expenses.List(r.Context())
	}
	if err != nil {
		httperr.InternalError(w, r, err, "list expenses")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"expenses": expenses})
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequestError(w, r, err, "date must be YYYY-MM-DD")
		return
	}
	if req.Amount <= 0 {
		httperr.BadRequestError(w, r, fmt.Errorf("amount %v", req.Amount), "amount must be positive")
		return
	}
	deductible := true
	if req.TaxDeductible != nil {
		deductible = *req.TaxDeductible
	}

	expense, err := h.store.Expenses.Create(r.Context(), store.Expense{
		ID:            uuid.NewString(),
		PropertyID:    req.PropertyID,
		Date:          date,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Vendor:        req.Vendor,
		TaxDeductible: deductible,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "create expense")
		return
	}
	respondJSON(w, http.StatusCreated, expense)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.Expenses.Delete, "delete expense")
}

// deleteByID shares the 404/500 handling for all delete endpoints.
func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id string) error, msg string) {
	id := chi.URLParam(r, "id")
	err := del(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		httperr.NotFoundError(w, r)
		return
	}
	if err != nil {
		httperr.InternalError(w, r, err, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
