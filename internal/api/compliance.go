package api

import (
	"net/http"

	"github.com/hostledger/hostledger/internal/compliance"
)

// Compliance returns the federal plus state checklist. Without a state param
// it lists the states with dedicated catalogs.
func (h *Handler) Compliance(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		respondJSON(w, http.StatusOK, map[string]any{"states": compliance.States()})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"state":     state,
		"checklist": compliance.Checklist(state),
	})
}
