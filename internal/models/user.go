package models

import "github.com/shopspring/decimal"

type User struct {
	ID      int64           `json:"userId"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Role    string          `json:"role"`
	Balance decimal.Decimal `json:"balance"`
}

// UsersByID indexes users by id. Later duplicates win.
func UsersByID(users []User) map[int64]User {
	byID := make(map[int64]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID
}
