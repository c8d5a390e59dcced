package adminapi

import (
	"context"
	"net/http"

	"github.com/a2sh3r/banshi-admin/internal/models"
)

func (c *Client) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	return call[*models.Dashboard](ctx, c, http.MethodGet, "/api/admin/dashboard", nil)
}

// ListWithdrawals queries the listing for one status. The server does the filtering.
func (c *Client) ListWithdrawals(ctx context.Context, filter models.WithdrawalFilter) ([]models.WithdrawalRequest, error) {
	f, err := models.ParseWithdrawalFilter(string(filter))
	if err != nil {
		return nil, err
	}
	return call[[]models.WithdrawalRequest](ctx, c, http.MethodGet, "/api/admin/withdrawals/"+string(f), nil)
}

func (c *Client) DecideWithdrawal(ctx context.Context, withdrawalID int64, approve bool) error {
	return c.exec(ctx, http.MethodPost, "/api/admin/withdrawals/decision", models.WithdrawalDecision{
		WithdrawalID: withdrawalID,
		Approve:      approve,
	})
}
