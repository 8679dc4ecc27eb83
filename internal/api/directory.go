package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	httperr "github.com/hostledger/hostledger/internal/http/errors"
	"github.com/hostledger/hostledger/internal/store"
)

// Contacts

type contactRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Rate    string `json:"rate"`
	Notes   string `json:"notes"`
}

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.Contacts.List(r.Context())
	if err != nil {
		httperr.InternalError(w, r, err, "list contacts")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	if req.Name == "" {
		httperr.BadRequestError(w, r, fmt.Errorf("missing name"), "name is required")
		return
	}
	contact, err := h.store.Contacts.Create(r.Context(), store.Contact{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Role:    req.Role,
		Company: req.Company,
		Phone:   req.Phone,
		Email:   req.Email,
		Rate:    req.Rate,
		Notes:   req.Notes,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "create contact")
		return
	}
	respondJSON(w, http.StatusCreated, contact)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.Contacts.Delete, "delete contact")
}

// Documents

type documentRequest struct {
	PropertyID string  `json:"property_id"`
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Vendor     string  `json:"vendor"`
	TaxYear    int     `json:"tax_year"`
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r, 0)
	var (
		docs []store.Document
		err  error
	)
	if year > 0 {
		docs, err = h.store.Documents.ListByTaxYear(r.Context(), year)
	} else {
		docs, err = h.store.Documents.List(r.Context())
	}
	if err != nil {
		httperr.InternalError(w, r, err, "list documents")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	if req.Title == "" {
		httperr.BadRequestError(w, r, fmt.Errorf("missing title"), "title is required")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequestError(w, r, err, "date must be YYYY-MM-DD")
		return
	}
	taxYear := req.TaxYear
	if taxYear == 0 {
		taxYear = date.Year()
	}
	doc, err := h.store.Documents.Create(r.Context(), store.Document{
		ID:         uuid.NewString(),
		PropertyID: req.PropertyID,
		Type:       req.Type,
		Title:      req.Title,
		Date:       date,
		Amount:     req.Amount,
		Vendor:     req.Vendor,
		TaxYear:    taxYear,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "create document")
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.Documents.Delete, "delete document")
}

// Maintenance

type maintenanceRequest struct {
	PropertyID string  `json:"property_id"`
	Title      string  `json:"title"`
	Priority   string  `json:"priority"`
	Status     string  `json:"status"`
	Cost       float64 `json:"cost"`
	Vendor     string  `json:"vendor"`
}

func (h *Handler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	var (
		items []store.MaintenanceItem
		err   error
	)
	if r.URL.Query().Get("open") == "true" {
		items, err = h.store.Maintenance.ListOpen(r.Context())
	} else {
		items, err = h.store.Maintenance.List(r.Context())
	}
	if err != nil {
		httperr.InternalError(w, r, err, "list maintenance")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"maintenance": items})
}

func (h *Handler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.BadRequestError(w, r, err, "invalid request body")
		return
	}
	if req.Title == "" {
		httperr.BadRequestError(w, r, fmt.Errorf("missing title"), "title is required")
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	status := req.Status
	if status == "" {
		status = "open"
	}
	item, err := h.store.Maintenance.Create(r.Context(), store.MaintenanceItem{
		ID:         uuid.NewString(),
		PropertyID: req.PropertyID,
		Title:      req.Title,
		Priority:   priority,
		Status:     status,
		Cost:       req.Cost,
		Vendor:     req.Vendor,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "create maintenance item")
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.store.Maintenance.Delete, "delete maintenance item")
}
