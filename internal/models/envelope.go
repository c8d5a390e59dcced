package models

// Envelope is the wrapper every admin API response and every console response uses.
type Envelope[T any] struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Response T      `json:"response"`
}

const (
	EnvelopeStatusSuccess = "success"
	EnvelopeStatusError   = "error"
)
