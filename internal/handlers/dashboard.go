package handlers

import (
	"net/http"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to load dashboard")
		return
	}
	writeJSON(w, http.StatusOK, "", d)
}
