package api

import (
	"net/http"

	"github.com/hostledger/hostledger/internal/briefing"
	httperr "github.com/hostledger/hostledger/internal/http/errors"
)

// Briefing returns the daily digest. The date query param overrides today.
func (h *Handler) Briefing(w http.ResponseWriter, r *http.Request) {
	day := dateParam(r, "date", h.today())

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
	maintenance, err := h.store.Maintenance.ListOpen(r.Context())
	if err != nil {
		httperr.InternalError(w, r, err, "list maintenance")
		return
	}

	respondJSON(w, http.StatusOK, briefing.Build(properties, bookings, maintenance, day))
}
