package handlers

import (
	"net/http"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/models"
)

type decisionRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

func (h *Handler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	list, err := h.withdrawalService.ListWithdrawals(r.Context(), models.WithdrawalFilter(q.Get("status")), q.Get("q"))
	if err != nil {
		writeServiceError(w, err, "Failed to fetch withdrawals")
		return
	}
	writeJSON(w, http.StatusOK, "", list)
}

func (h *Handler) DecideWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "withdrawalID", apperrors.ErrInvalidWithdrawalID)
	if err != nil {
		writeServiceError(w, err, "Failed to update withdrawal")
		return
	}

	var req decisionRequest
	if err := decodeJSON(r, &req); err != nil || h.validate.Struct(req) != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	q := r.URL.Query()
	list, err := h.withdrawalService.DecideWithdrawal(r.Context(), id, *req.Approve, models.WithdrawalFilter(q.Get("status")), q.Get("q"))
	if err != nil {
		writeServiceError(w, err, "Failed to update withdrawal")
		return
	}

	message := "Withdrawal rejected"
	if *req.Approve {
		message = "Withdrawal approved"
	}
	writeJSON(w, http.StatusOK, message, list)
}
