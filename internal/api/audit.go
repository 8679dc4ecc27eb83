package api

import (
	"fmt"
	"net/http"

	"github.com/hostledger/hostledger/internal/audit"
	httperr "github.com/hostledger/hostledger/internal/http/errors"
)

// AuditPDF streams the tax-year operations report.
func (h *Handler) AuditPDF(w http.ResponseWriter, r *http.Request) {
	today := h.today()
	year := yearParam(r, today.Year())
	ctx := r.Context()

	properties, err := h.store.Properties.List(ctx)
	if err != nil {
		httperr.InternalError(w, r, err, "list properties")
		return
	}
	bookings, err := h.store.Bookings.List(ctx)
	if err != nil {
		httperr.InternalError(w, r, err, "list bookings")
		return
	}
	expenses, err := h.store.Expenses.ListByYear(ctx, year)
	if err != nil {
		httperr.InternalError(w, r, err, "list expenses")
		return
	}
	timeEntries, err := h.store.TimeEntries.ListByYear(ctx, year)
	if err != nil {
		httperr.InternalError(w, r, err, "list time entries")
		return
	}
	documents, err := h.store.Documents.ListByTaxYear(ctx, year)
	if err != nil {
		httperr.InternalError(w, r, err, "list documents")
		return
	}
	contacts, err := h.store.Contacts.List(ctx)
	if err != nil {
		httperr.InternalError(w, r, err, "list contacts")
		return
	}
	maintenance, err := h.store.Maintenance.List(ctx)
	if err != nil {
		httperr.InternalError(w, r, err, "list maintenance")
		return
	}

	pdf, err := audit.Generate(audit.Input{
		Properties:  properties,
		Bookings:    bookings,
		Expenses:    expenses,
		TimeEntries: timeEntries,
		Documents:   documents,
		Contacts:    contacts,
		Maintenance: maintenance,
		TaxYear:     year,
		Today:       today,
	})
	if err != nil {
		httperr.InternalError(w, r, err, "generate audit pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=hostledger-audit-%d.pdf", year))
	_, _ = w.Write(pdf)
}
