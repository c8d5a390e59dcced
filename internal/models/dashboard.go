package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Dashboard struct {
	TotalDeposits             decimal.Decimal   `json:"totalDeposits"`
	TotalUsers                int64             `json:"totalUsers"`
	TotalGames                int64             `json:"totalGames"`
	TotalPlacedBid            decimal.Decimal   `json:"totalPlacedBid"`
	TotalWithdrawals          decimal.Decimal   `json:"totalWithdrawals"`
	PendingWithdrawalAmount   decimal.Decimal   `json:"pendingWithdrawalAmount"`
	NetRevenue                decimal.Decimal   `json:"netRevenue"`
	PendingWithdrawalRequests int64             `json:"pendingWithdrawalRequests"`
	RecentActivity            []json.RawMessage `json:"recentActivity,omitempty"`
}
