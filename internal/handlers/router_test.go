package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/middleware"
	service_mocks "github.com/a2sh3r/banshi-admin/internal/mocks/service_mocks"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := service_mocks.NewMockDashboardService(ctrl)
	dashboard.EXPECT().GetDashboard(gomock.Any()).Return(models.Dashboard{}, nil).AnyTimes()

	handler := NewHandler(Services{Dashboard: dashboard}, time.UTC)
	router := NewRouter(handler, "testsecret", middleware.NewClientRateLimiter(1000, 1000))

	token, err := middleware.IssueToken("testsecret", "admin")
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		auth   string
		status int
	}{
		{"GET", "/api/console/dashboard", "", http.StatusUnauthorized},
		{"GET", "/api/console/withdrawals", "", http.StatusUnauthorized},
		{"GET", "/api/console/dashboard", "Bearer " + token, http.StatusOK},
		{"POST", "/api/console/login", "", http.StatusBadRequest},
		{"PATCH", "/api/console/login", "", http.StatusMethodNotAllowed},
		{"GET", "/notfound", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		if tt.auth != "" {
			req.Header.Set("Authorization", tt.auth)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		resp := w.Result()
		if resp.StatusCode != tt.status {
			t.Errorf("%s %s: got %d, want %d", tt.method, tt.path, resp.StatusCode, tt.status)
		}
		_ = resp.Body.Close()
	}
}

func TestRouter_RateLimit(t *testing.T) {
	handler := NewHandler(Services{}, time.UTC)
	router := NewRouter(handler, "", middleware.NewClientRateLimiter(0.001, 1))

	w := do(t, router, http.MethodPost, "/api/console/login", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/console/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, models.EnvelopeStatusError, decodeEnvelope[any](t, w).Status)
}

func TestHandler_GetDashboard(t *testing.T) {
	router, m := newTestRouter(t)

	m.dashboard.EXPECT().GetDashboard(gomock.Any()).Return(models.Dashboard{
		TotalUsers: 4,
		NetRevenue: decimal.RequireFromString("1500.25"),
	}, nil)

	w := do(t, router, http.MethodGet, "/api/console/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope[models.Dashboard](t, w)
	assert.Equal(t, int64(4), env.Response.TotalUsers)
	assert.True(t, decimal.RequireFromString("1500.25").Equal(env.Response.NetRevenue))

	m.dashboard.EXPECT().GetDashboard(gomock.Any()).Return(models.Dashboard{}, apperrors.ErrRemoteCall)
	w = do(t, router, http.MethodGet, "/api/console/dashboard", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_GetJournal(t *testing.T) {
	router, m := newTestRouter(t)

	tests := []struct {
		name           string
		target         string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name:   "default limit",
			target: "/api/console/journal",
			mockSetup: func() {
				m.journal.EXPECT().Recent(gomock.Any(), 0).Return([]models.JournalEntry{{ID: "a"}}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "explicit limit",
			target: "/api/console/journal?limit=10",
			mockSetup: func() {
				m.journal.EXPECT().Recent(gomock.Any(), 10).Return(nil, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "limit too large",
			target:         "/api/console/journal?limit=100000",
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "limit not a number",
			target:         "/api/console/journal?limit=ten",
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "journal disabled",
			target: "/api/console/journal",
			mockSetup: func() {
				m.journal.EXPECT().Recent(gomock.Any(), 0).Return(nil, apperrors.ErrJournalDisabled)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w := do(t, router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}
