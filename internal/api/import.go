package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hostledger/hostledger/internal/feed"
	httperr "github.com/hostledger/hostledger/internal/http/errors"
	"github.com/hostledger/hostledger/internal/metrics"
)

const maxImportBody = 10 << 20

type importRequest struct {
	URL string `json:"url"`
}

// ImportFeed runs the calendar import pipeline for one property. The body is
// either JSON {"url": "..."} naming a feed to fetch, or raw iCalendar text.
func (h *Handler) ImportFeed(w http.ResponseWriter, r *http.Request) {
	prop := h.loadProperty(w, r)
	if prop == nil {
		return
	}

	existing, err := h.store.Bookings.ListByProperty(r.Context(), prop.ID)
	if err != nil {
		httperr.InternalError(w, r, err, "list existing bookings")
		return
	}

	today := h.today()
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var req importRequest
		if err := decodeJSON(r, &req); err != nil {
			httperr.BadRequestError(w, r, err, "invalid request body")
			return
		}
		if req.URL == "" {
			httperr.BadRequestError(w, r, fmt.Errorf("missing url"), "url is required")
			return
		}
		rep, err := h.importer.ImportURL(r.Context(), req.URL, *prop, existing, today)
		if err != nil {
			metrics.ObserveImportFailure()
			httperr.LogError(r, "import feed", err)
			http.Error(w, "feed fetch failed", http.StatusBadGateway)
			return
		}
		h.persistReport(w, r, rep)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBody))
	if err != nil {
		httperr.BadRequestError(w, r, err, "unreadable body")
		return
	}
	if len(body) == 0 {
		httperr.BadRequestError(w, r, fmt.Errorf("empty body"), "feed body is required")
		return
	}
	rep := h.importer.Import(string(body), *prop, existing, today)
	h.persistReport(w, r, rep)
}

func (h *Handler) persistReport(w http.ResponseWriter, r *http.Request, rep feed.Report) {
	if err := h.store.Bookings.CreateBatch(r.Context(), rep.Inserted); err != nil {
		metrics.ObserveImportFailure()
		httperr.InternalError(w, r, err, "persist imported bookings")
		return
	}
	metrics.ObserveImport(len(rep.Inserted), rep.Duplicates, rep.NeedsReview, rep.Invalid, rep.ParseFailures)
	httperr.LogInfo(r, fmt.Sprintf("imported %d bookings (%d duplicates, %d needs review, %d invalid, %d parse failures)",
		len(rep.Inserted), rep.Duplicates, rep.NeedsReview, rep.Invalid, rep.ParseFailures))
	respondJSON(w, http.StatusOK, rep)
}
