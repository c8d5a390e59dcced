package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrRemoteCall         = errors.New("admin api call failed")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid login or password")

	ErrGameNameRequired         = errors.New("game name is required")
	ErrOpeningTimeRequired      = errors.New("opening date and time are required")
	ErrClosingTimeRequired      = errors.New("closing date and time are required")
	ErrInvalidGameWindow        = errors.New("closing time must be after opening time")
	ErrMissingDeclarationFields = errors.New("game id, open result and close result are required")
	ErrInvalidGameID            = errors.New("invalid game id")

	ErrInvalidStatusFilter = errors.New("invalid withdrawal status filter")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidWithdrawalID = errors.New("invalid withdrawal id")

	ErrRefreshAfterDecision = errors.New("decision applied but list refresh failed")

	ErrCacheMiss       = errors.New("cache miss")
	ErrJournalDisabled = errors.New("action journal is disabled")
)
