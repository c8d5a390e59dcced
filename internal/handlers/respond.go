package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON[T any](w http.ResponseWriter, status int, message string, response T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(models.Envelope[T]{
		Status:   models.EnvelopeStatusSuccess,
		Message:  message,
		Response: response,
	}); err != nil {
		logger.Log.Error("failed to encode response json", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Envelope[any]{
		Status:  models.EnvelopeStatusError,
		Message: message,
	})
}

// writeServiceError maps a service error onto a console status. failMessage is shown for remote
// and internal failures; validation errors carry their own text.
func writeServiceError(w http.ResponseWriter, err error, failMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrGameNameRequired),
		errors.Is(err, apperrors.ErrOpeningTimeRequired),
		errors.Is(err, apperrors.ErrClosingTimeRequired),
		errors.Is(err, apperrors.ErrInvalidGameWindow),
		errors.Is(err, apperrors.ErrMissingDeclarationFields),
		errors.Is(err, apperrors.ErrInvalidGameID),
		errors.Is(err, apperrors.ErrInvalidStatusFilter),
		errors.Is(err, apperrors.ErrInvalidUserID),
		errors.Is(err, apperrors.ErrInvalidWithdrawalID),
		errors.Is(err, apperrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error())
	case errors.Is(err, apperrors.ErrJournalDisabled):
		writeError(w, http.StatusNotFound, apperrors.ErrJournalDisabled.Error())
	case errors.Is(err, apperrors.ErrRefreshAfterDecision):
		logger.Log.Warn("refresh after decision failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, apperrors.ErrRefreshAfterDecision.Error())
	case errors.Is(err, apperrors.ErrRemoteCall):
		logger.Log.Warn(failMessage, zap.Error(err))
		writeError(w, http.StatusBadGateway, failMessage)
	default:
		logger.Log.Error(failMessage, zap.Error(err))
		writeError(w, http.StatusInternalServerError, failMessage)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

func pathID(r *http.Request, name string, invalid error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}
	return id, nil
}
