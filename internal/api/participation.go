package api

import (
	"net/http"
	"strconv"
	"strings"

	httperr "github.com/hostledger/hostledger/internal/http/errors"
	"github.com/hostledger/hostledger/internal/participation"
)

// Participation returns the material participation snapshot for a tax year.
// Co-participant hours, when the owner tracks them, arrive as repeated
// "other" query params in name:hours form.
func (h *Handler) Participation(w http.ResponseWriter, r *http.Request) {
	today := dateParam(r, "today", h.today())
	year := yearParam(r, today.Year())

	entries, err := h.store.TimeEntries.ListByYear(r.Context(), year)
	if err != nil {
		httperr.InternalError(w, r, err, "list time entries")
		return
	}

	others := parseParticipants(r.URL.Query()["other"])
	snap := participation.Compute(entries, others, today, year, h.weeksPerYear)
	respondJSON(w, http.StatusOK, snap)
}

// Categories returns the canonical activity categories for the time log.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"categories": participation.Categories})
}

func parseParticipants(raw []string) []participation.Participant {
	var out []participation.Participant
	for _, v := range raw {
		name, hours, ok := splitParticipant(v)
		if !ok {
			continue
		}
		out = append(out, participation.Participant{Name: name, Hours: hours})
	}
	return out
}

func splitParticipant(v string) (string, float64, bool) {
	i := strings.LastIndex(v, ":")
	if i <= 0 {
		return "", 0, false
	}
	hours, err := strconv.ParseFloat(v[i+1:], 64)
	if err != nil || hours < 0 {
		return "", 0, false
	}
	return v[:i], hours, true
}
