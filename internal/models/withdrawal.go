package models

import (
	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// WithdrawalFilter selects which admin API listing is queried. Filtering happens on the server.
type WithdrawalFilter string

const (
	FilterAll      WithdrawalFilter = "all"
	FilterPending  WithdrawalFilter = "pending"
	FilterApproved WithdrawalFilter = "approved"
	FilterRejected WithdrawalFilter = "rejected"
)

// ParseWithdrawalFilter maps a query value onto a filter. An empty value means FilterAll.
func ParseWithdrawalFilter(s string) (WithdrawalFilter, error) {
	switch f := WithdrawalFilter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterApproved, FilterRejected:
		return f, nil
	default:
		return "", apperrors.ErrInvalidStatusFilter
	}
}

type WithdrawalRequest struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	UserName    string           `json:"userName"`
	Amount      decimal.Decimal  `json:"amount"`
	UpiID       string           `json:"upiId"`
	Status      WithdrawalStatus `json:"status"`
	RequestedAt string           `json:"requestedAt"`
	ProcessedAt *string          `json:"processedAt,omitempty"`
}

type WithdrawalDecision struct {
	WithdrawalID int64 `json:"withdrawalId"`
	Approve      bool  `json:"approve"`
}

// EnrichedWithdrawal is a withdrawal joined with the contact and balance data of its user.
type EnrichedWithdrawal struct {
	WithdrawalRequest
	UserPhone   string          `json:"userPhone"`
	UserBalance decimal.Decimal `json:"balance"`
	UserKnown   bool            `json:"userKnown"`
}
