package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultTimeout = 10 * time.Second

type ClientInterface interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, req models.CreateGameRequest) (*models.Game, error)
	DeclareResult(ctx context.Context, req models.GameDeclarationRequest) error
	DeleteGame(ctx context.Context, gameID int64) error

	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	GetDashboard(ctx context.Context) (*models.Dashboard, error)

	ListWithdrawals(ctx context.Context, filter models.WithdrawalFilter) ([]models.WithdrawalRequest, error)
	DecideWithdrawal(ctx context.Context, withdrawalID int64, approve bool) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// send performs one request. A transport error or a non-2xx status is reported as apperrors.ErrRemoteCall;
// the server's error body is not interpreted.
func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", apperrors.ErrRemoteCall, method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Warn("admin api transport error",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s %s: %v", apperrors.ErrRemoteCall, method, path, err)
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close admin api response body", zap.Error(err))
		}
	}(resp.Body)

	logger.Log.Debug("admin api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("took", time.Since(started)),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read body: %v", apperrors.ErrRemoteCall, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: unexpected status: %d", apperrors.ErrRemoteCall, method, path, resp.StatusCode)
	}

	return data, nil
}

// call performs a request and unwraps the response envelope.
func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	data, err := c.send(ctx, method, path, body)
	if err != nil {
		return zero, err
	}

	var env models.Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("%w: %s %s: decode envelope: %v", apperrors.ErrRemoteCall, method, path, err)
	}

	return env.Response, nil
}

// exec performs a request whose response body is not needed.
func (c *Client) exec(ctx context.Context, method, path string, body any) error {
	_, err := c.send(ctx, method, path, body)
	return err
}
