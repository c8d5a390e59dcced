package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a2sh3r/banshi-admin/internal/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return call[[]models.User](ctx, c, http.MethodGet, "/api/admin/user/all", nil)
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.exec(ctx, http.MethodDelete, fmt.Sprintf("/api/user/%d", userID), nil)
}
