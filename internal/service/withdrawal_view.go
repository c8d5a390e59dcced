package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MissingPhone is shown in place of a phone number when a withdrawal's user is not in the directory.
const MissingPhone = "-"

type withdrawalAPI interface {
	ListWithdrawals(ctx context.Context, filter models.WithdrawalFilter) ([]models.WithdrawalRequest, error)
	DecideWithdrawal(ctx context.Context, withdrawalID int64, approve bool) error
}

// WithdrawalView holds one screen's worth of withdrawal state: the active status filter, the search text,
// the last fetched withdrawals and the user map they are joined against.
//
// Every fetch is tagged with a generation number. Only the response to the latest fetch is applied,
// so a slow response for an old filter cannot overwrite a newer list.
type WithdrawalView struct {
	client withdrawalAPI
	users  UserDirectory

	mu          sync.Mutex
	filter      models.WithdrawalFilter
	search      string
	withdrawals []models.WithdrawalRequest
	usersByID   map[int64]models.User
	generation  uint64
}

func NewWithdrawalView(client withdrawalAPI, users UserDirectory, filter models.WithdrawalFilter) *WithdrawalView {
	if filter == "" {
		filter = models.FilterAll
	}
	return &WithdrawalView{
		client:    client,
		users:     users,
		filter:    filter,
		usersByID: map[int64]models.User{},
	}
}

// Open loads withdrawals and users concurrently. Only the withdrawal fetch can fail it.
func (v *WithdrawalView) Open(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v.LoadUsers(ctx)
	}()

	err := v.Refresh(ctx)
	wg.Wait()
	return err
}

// LoadUsers replaces the user map. A failure keeps the previous map and is only logged.
func (v *WithdrawalView) LoadUsers(ctx context.Context) {
	byID, err := v.users.UsersByID(ctx)
	if err != nil {
		logger.Log.Warn("user directory unavailable, withdrawals shown without contact data", zap.Error(err))
		return
	}

	v.mu.Lock()
	v.usersByID = byID
	v.mu.Unlock()
}

// Refresh re-fetches withdrawals for the active filter. On failure the previous list is kept.
func (v *WithdrawalView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	filter := v.filter
	v.mu.Unlock()

	list, err := v.client.ListWithdrawals(ctx, filter)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		logger.Log.Debug("discarding stale withdrawal listing",
			zap.String("filter", string(filter)),
			zap.Uint64("generation", gen),
			zap.Uint64("latest", v.generation),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch %s withdrawals: %w", filter, err)
	}

	v.withdrawals = list
	return nil
}

// SetFilter switches the status filter and refreshes.
func (v *WithdrawalView) SetFilter(ctx context.Context, filter models.WithdrawalFilter) error {
	f, err := models.ParseWithdrawalFilter(string(filter))
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.filter = f
	v.mu.Unlock()

	return v.Refresh(ctx)
}

func (v *WithdrawalView) Filter() models.WithdrawalFilter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *WithdrawalView) SetSearch(text string) {
	v.mu.Lock()
	v.search = text
	v.mu.Unlock()
}

// Decide approves or rejects a withdrawal. On success the list is re-fetched from the server, never
// patched locally, and the user directory is reloaded because balances moved. On failure nothing changes.
func (v *WithdrawalView) Decide(ctx context.Context, withdrawalID int64, approve bool) error {
	if err := v.client.DecideWithdrawal(ctx, withdrawalID, approve); err != nil {
		return fmt.Errorf("failed to decide withdrawal %d: %w", withdrawalID, err)
	}

	if err := v.users.InvalidateUsers(ctx); err != nil {
		logger.Log.Warn("failed to invalidate user directory", zap.Error(err))
	}

	if err := v.Open(ctx); err != nil {
		return fmt.Errorf("%w: withdrawal %d: %w", apperrors.ErrRefreshAfterDecision, withdrawalID, err)
	}
	return nil
}

// Visible returns the joined list narrowed by the search text.
func (v *WithdrawalView) Visible() []models.EnrichedWithdrawal {
	v.mu.Lock()
	withdrawals := v.withdrawals
	usersByID := v.usersByID
	search := v.search
	v.mu.Unlock()

	return FilterWithdrawals(Enrich(withdrawals, usersByID), search)
}

// Enrich joins withdrawals with their users by id. A missing user yields MissingPhone and a zero balance.
func Enrich(withdrawals []models.WithdrawalRequest, usersByID map[int64]models.User) []models.EnrichedWithdrawal {
	out := make([]models.EnrichedWithdrawal, 0, len(withdrawals))
	for _, w := range withdrawals {
		e := models.EnrichedWithdrawal{
			WithdrawalRequest: w,
			UserPhone:         MissingPhone,
			UserBalance:       decimal.Zero,
		}
		if u, ok := usersByID[w.UserID]; ok {
			e.UserPhone = u.Phone
			e.UserBalance = u.Balance
			e.UserKnown = true
		}
		out = append(out, e)
	}
	return out
}

// FilterWithdrawals keeps withdrawals whose user name, phone or amount contains query, ignoring case.
// A blank query returns the list unchanged.
func FilterWithdrawals(list []models.EnrichedWithdrawal, query string) []models.EnrichedWithdrawal {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]models.EnrichedWithdrawal, 0, len(list))
	for _, w := range list {
		phone := ""
		if w.UserKnown {
			phone = strings.ToLower(w.UserPhone)
		}
		if strings.Contains(strings.ToLower(w.UserName), q) ||
			strings.Contains(phone, q) ||
			strings.Contains(w.Amount.String(), q) {
			out = append(out, w)
		}
	}
	return out
}
