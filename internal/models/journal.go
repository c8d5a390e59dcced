package models

import "time"

type JournalAction string

const (
	ActionGameCreated       JournalAction = "game_created"
	ActionGameDeleted       JournalAction = "game_deleted"
	ActionResultDeclared    JournalAction = "result_declared"
	ActionUserDeleted       JournalAction = "user_deleted"
	ActionWithdrawalApprove JournalAction = "withdrawal_approved"
	ActionWithdrawalReject  JournalAction = "withdrawal_rejected"
)

type JournalEntry struct {
	ID        string        `json:"id" db:"id"`
	Actor     string        `json:"actor" db:"actor"`
	Action    JournalAction `json:"action" db:"action"`
	TargetID  int64         `json:"targetId" db:"target_id"`
	Detail    string        `json:"detail,omitempty" db:"detail"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
