package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/middleware"
	service_mocks "github.com/a2sh3r/banshi-admin/internal/mocks/service_mocks"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServices struct {
	auth        *service_mocks.MockAuthService
	dashboard   *service_mocks.MockDashboardService
	games       *service_mocks.MockGameService
	users       *service_mocks.MockUserService
	withdrawals *service_mocks.MockWithdrawalService
	journal     *service_mocks.MockJournalService
}

// newTestRouter serves the console without auth so handlers are reached directly.
func newTestRouter(t *testing.T) (chi.Router, testServices) {
	t.Helper()
	logger.Log = zap.NewNop()

	ctrl := gomock.NewController(t)
	m := testServices{
		auth:        service_mocks.NewMockAuthService(ctrl),
		dashboard:   service_mocks.NewMockDashboardService(ctrl),
		games:       service_mocks.NewMockGameService(ctrl),
		users:       service_mocks.NewMockUserService(ctrl),
		withdrawals: service_mocks.NewMockWithdrawalService(ctrl),
		journal:     service_mocks.NewMockJournalService(ctrl),
	}

	h := NewHandler(Services{
		Auth:        m.auth,
		Dashboard:   m.dashboard,
		Games:       m.games,
		Users:       m.users,
		Withdrawals: m.withdrawals,
		Journal:     m.journal,
	}, time.UTC)

	return NewRouter(h, "", middleware.NewClientRateLimiter(1000, 1000)), m
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope[T any](t *testing.T, w *httptest.ResponseRecorder) models.Envelope[T] {
	t.Helper()
	var env models.Envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
