package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/banshi-admin/internal/models"
)

// writeError answers with an error envelope.
func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.Envelope[any]{
		Status:  models.EnvelopeStatusError,
		Message: message,
	})
}
