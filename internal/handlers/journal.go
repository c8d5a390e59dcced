package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a2sh3r/banshi-admin/internal/repository"
)

// GetJournal lists recent console actions. Without a limit the repository default applies.
func (h *Handler) GetJournal(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || h.validate.Var(n, fmt.Sprintf("min=1,max=%d", repository.MaxJournalLimit)) != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.journalService.Recent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err, "Failed to load journal")
		return
	}
	writeJSON(w, http.StatusOK, "", entries)
}
