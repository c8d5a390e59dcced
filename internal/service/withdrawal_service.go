package service

import (
	"context"
	"errors"

	"github.com/a2sh3r/banshi-admin/internal/adminapi"
	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/a2sh3r/banshi-admin/internal/repository"
)

type WithdrawalService interface {
	ListWithdrawals(ctx context.Context, filter models.WithdrawalFilter, search string) ([]models.EnrichedWithdrawal, error)
	DecideWithdrawal(ctx context.Context, withdrawalID int64, approve bool, filter models.WithdrawalFilter, search string) ([]models.EnrichedWithdrawal, error)
}

type withdrawalService struct {
	client  adminapi.ClientInterface
	users   UserDirectory
	journal repository.JournalRepository
}

func NewWithdrawalService(client adminapi.ClientInterface, users UserDirectory, journal repository.JournalRepository) WithdrawalService {
	return &withdrawalService{
		client:  client,
		users:   users,
		journal: journal,
	}
}

func (s *withdrawalService) view(filter models.WithdrawalFilter, search string) (*WithdrawalView, error) {
	f, err := models.ParseWithdrawalFilter(string(filter))
	if err != nil {
		return nil, err
	}
	v := NewWithdrawalView(s.client, s.users, f)
	v.SetSearch(search)
	return v, nil
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context, filter models.WithdrawalFilter, search string) ([]models.EnrichedWithdrawal, error) {
	v, err := s.view(filter, search)
	if err != nil {
		return nil, err
	}
	if err := v.Open(ctx); err != nil {
		return nil, err
	}
	return v.Visible(), nil
}

// DecideWithdrawal applies the decision and returns the list for filter as the server reports it afterwards.
func (s *withdrawalService) DecideWithdrawal(ctx context.Context, withdrawalID int64, approve bool, filter models.WithdrawalFilter, search string) ([]models.EnrichedWithdrawal, error) {
	if withdrawalID <= 0 {
		return nil, apperrors.ErrInvalidWithdrawalID
	}

	v, err := s.view(filter, search)
	if err != nil {
		return nil, err
	}

	err = v.Decide(ctx, withdrawalID, approve)
	if err == nil || errors.Is(err, apperrors.ErrRefreshAfterDecision) {
		record(ctx, s.journal, decisionAction(approve), withdrawalID, "")
	}
	if err != nil {
		return nil, err
	}
	return v.Visible(), nil
}

func decisionAction(approve bool) models.JournalAction {
	if approve {
		return models.ActionWithdrawalApprove
	}
	return models.ActionWithdrawalReject
}
