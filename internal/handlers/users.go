package handlers

import (
	"net/http"
	"strconv"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	refresh := false
	if raw := q.Get("refresh"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid refresh flag")
			return
		}
		refresh = v
	}

	users, err := h.userService.ListUsers(r.Context(), q.Get("q"), refresh)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch users")
		return
	}
	writeJSON(w, http.StatusOK, "", users)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userID", apperrors.ErrInvalidUserID)
	if err != nil {
		writeServiceError(w, err, "Failed to delete user")
		return
	}

	users, err := h.userService.DeleteUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, "User deleted successfully", users)
}
