package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a2sh3r/banshi-admin/internal/models"
)

func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	return call[[]models.Game](ctx, c, http.MethodGet, "/api/admin/games/all", nil)
}

func (c *Client) CreateGame(ctx context.Context, req models.CreateGameRequest) (*models.Game, error) {
	return call[*models.Game](ctx, c, http.MethodPost, "/api/admin/games/create", req)
}

func (c *Client) DeclareResult(ctx context.Context, req models.GameDeclarationRequest) error {
	return c.exec(ctx, http.MethodPut, "/api/admin/games/declare-result", req)
}

func (c *Client) DeleteGame(ctx context.Context, gameID int64) error {
	return c.exec(ctx, http.MethodDelete, fmt.Sprintf("/api/games/delete/%d", gameID), nil)
}
