package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Login(t *testing.T) {
	router, m := newTestRouter(t)

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
		wantToken      string
	}{
		{
			name: "success",
			body: `{"login":"admin","password":"pass"}`,
			mockSetup: func() {
				m.auth.EXPECT().Login(gomock.Any(), "admin", "pass").Return("tok", nil)
			},
			wantStatusCode: http.StatusOK,
			wantToken:      "tok",
		},
		{
			name: "bad credentials",
			body: `{"login":"admin","password":"nope"}`,
			mockSetup: func() {
				m.auth.EXPECT().Login(gomock.Any(), "admin", "nope").Return("", apperrors.ErrInvalidCredentials)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           `{"login":"admin"}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           `{"login":`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "signing failure",
			body: `{"login":"admin","password":"pass"}`,
			mockSetup: func() {
				m.auth.EXPECT().Login(gomock.Any(), "admin", "pass").Return("", errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w := do(t, router, http.MethodPost, "/api/console/login", tt.body)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantToken == "" {
				env := decodeEnvelope[any](t, w)
				assert.Equal(t, models.EnvelopeStatusError, env.Status)
				return
			}

			env := decodeEnvelope[loginResponse](t, w)
			assert.Equal(t, models.EnvelopeStatusSuccess, env.Status)
			assert.Equal(t, tt.wantToken, env.Response.Token)
			assert.Equal(t, "Bearer "+tt.wantToken, w.Header().Get("Authorization"))
		})
	}
}
