package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ListWithdrawals(t *testing.T) {
	router, m := newTestRouter(t)

	tests := []struct {
		name           string
		target         string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name:   "pending with search",
			target: "/api/console/withdrawals?status=pending&q=ravi",
			mockSetup: func() {
				m.withdrawals.EXPECT().ListWithdrawals(gomock.Any(), models.FilterPending, "ravi").Return([]models.EnrichedWithdrawal{
					{
						WithdrawalRequest: models.WithdrawalRequest{ID: 41, UserID: 1, Amount: decimal.NewFromInt(250)},
						UserPhone:         "98765",
						UserBalance:       decimal.NewFromInt(500),
						UserKnown:         true,
					},
				}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "no status",
			target: "/api/console/withdrawals",
			mockSetup: func() {
				m.withdrawals.EXPECT().ListWithdrawals(gomock.Any(), models.WithdrawalFilter(""), "").Return(nil, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "unknown status",
			target: "/api/console/withdrawals?status=done",
			mockSetup: func() {
				m.withdrawals.EXPECT().ListWithdrawals(gomock.Any(), models.WithdrawalFilter("done"), "").Return(nil, apperrors.ErrInvalidStatusFilter)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "remote failure",
			target: "/api/console/withdrawals?status=all",
			mockSetup: func() {
				m.withdrawals.EXPECT().ListWithdrawals(gomock.Any(), models.FilterAll, "").Return(nil, fmt.Errorf("failed to fetch all withdrawals: %w", apperrors.ErrRemoteCall))
			},
			wantStatusCode: http.StatusBadGateway,
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

func TestHandler_ListWithdrawals_Body(t *testing.T) {
	router, m := newTestRouter(t)

	m.withdrawals.EXPECT().ListWithdrawals(gomock.Any(), models.FilterAll, "").Return([]models.EnrichedWithdrawal{
		{
			WithdrawalRequest: models.WithdrawalRequest{ID: 43, UserID: 7, UserName: "Ghost", Amount: decimal.NewFromInt(100)},
			UserPhone:         "-",
			UserBalance:       decimal.Zero,
		},
	}, nil)

	w := do(t, router, http.MethodGet, "/api/console/withdrawals?status=all", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope[[]map[string]any](t, w)
	require.Len(t, env.Response, 1)
	assert.Equal(t, models.EnvelopeStatusSuccess, env.Status)
	assert.Equal(t, "-", env.Response[0]["userPhone"])
	assert.Equal(t, "Ghost", env.Response[0]["userName"])
}

func TestHandler_DecideWithdrawal(t *testing.T) {
	router, m := newTestRouter(t)

	tests := []struct {
		name           string
		target         string
		body           string
		mockSetup      func()
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:   "approve",
			target: "/api/console/withdrawals/42/decision?status=pending",
			body:   `{"approve":true}`,
			mockSetup: func() {
				m.withdrawals.EXPECT().DecideWithdrawal(gomock.Any(), int64(42), true, models.FilterPending, "").
					Return([]models.EnrichedWithdrawal{{WithdrawalRequest: models.WithdrawalRequest{ID: 41}}}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantMessage:    "Withdrawal approved",
		},
		{
			name:   "reject",
			target: "/api/console/withdrawals/42/decision?status=pending&q=anita",
			body:   `{"approve":false}`,
			mockSetup: func() {
				m.withdrawals.EXPECT().DecideWithdrawal(gomock.Any(), int64(42), false, models.FilterPending, "anita").Return(nil, nil)
			},
			wantStatusCode: http.StatusOK,
			wantMessage:    "Withdrawal rejected",
		},
		{
			name:           "approve flag missing",
			target:         "/api/console/withdrawals/42/decision",
			body:           `{}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid input",
		},
		{
			name:           "invalid id",
			target:         "/api/console/withdrawals/abc/decision",
			body:           `{"approve":true}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    apperrors.ErrInvalidWithdrawalID.Error(),
		},
		{
			name:   "decision failed",
			target: "/api/console/withdrawals/42/decision?status=pending",
			body:   `{"approve":true}`,
			mockSetup: func() {
				m.withdrawals.EXPECT().DecideWithdrawal(gomock.Any(), int64(42), true, models.FilterPending, "").
					Return(nil, fmt.Errorf("failed to decide withdrawal 42: %w", apperrors.ErrRemoteCall))
			},
			wantStatusCode: http.StatusBadGateway,
			wantMessage:    "Failed to update withdrawal",
		},
		{
			name:   "applied but refresh failed",
			target: "/api/console/withdrawals/42/decision?status=pending",
			body:   `{"approve":true}`,
			mockSetup: func() {
				m.withdrawals.EXPECT().DecideWithdrawal(gomock.Any(), int64(42), true, models.FilterPending, "").
					Return(nil, fmt.Errorf("%w: withdrawal 42: %w", apperrors.ErrRefreshAfterDecision, apperrors.ErrRemoteCall))
			},
			wantStatusCode: http.StatusBadGateway,
			wantMessage:    apperrors.ErrRefreshAfterDecision.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w := do(t, router, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, tt.wantMessage, decodeEnvelope[any](t, w).Message)
		})
	}
}
