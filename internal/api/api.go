// Package api implements the JSON handlers for the owner-facing HTTP API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hostledger/hostledger/internal/feed"
	httperr "github.com/hostledger/hostledger/internal/http/errors"
	"github.com/hostledger/hostledger/internal/store"
)

// Handler serves the API routes. The clock is injected so date-sensitive
// endpoints are deterministic under test.
type Handler struct {
	store        *store.Store
	importer     *feed.Importer
	weeksPerYear int
	now          func() time.Time
}

func NewHandler(st *store.Store, importer *feed.Importer, weeksPerYear int) *Handler {
	return &Handler{
		store:        st,
		importer:     importer,
		weeksPerYear: weeksPerYear,
		now:          time.Now,
	}
}

// WithClock overrides the time source.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) today() time.Time {
	t := h.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// loadProperty resolves the {id} URL parameter, translating ErrNotFound
// into a 404. Returns nil once the response has been written.
func (h *Handler) loadProperty(w http.ResponseWriter, r *http.Request) *store.Property {
	id := chi.URLParam(r, "id")
	prop, err := h.store.Properties.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		httperr.NotFoundError(w, r)
		return nil
	}
	if err != nil {
		httperr.InternalError(w, r, err, "load property")
		return nil
	}
	return prop
}

func yearParam(r *http.Request, fallback int) int {
	if v := r.URL.Query().Get("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil && y > 1900 && y < 3000 {
			return y
		}
	}
	return fallback
}

func dateParam(r *http.Request, name string, fallback time.Time) time.Time {
	if v := r.URL.Query().Get(name); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			return d
		}
	}
	return fallback
}

func floatParam(r *http.Request, name string, fallback float64) float64 {
	if v := r.URL.Query().Get(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
