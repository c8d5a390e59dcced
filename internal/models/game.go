package models

type GameStatus string

const (
	GameStatusUpcoming GameStatus = "upcoming"
	GameStatusActive   GameStatus = "active"
	GameStatusClosed   GameStatus = "closed"
)

type Game struct {
	ID          int64   `json:"gameId"`
	Name        string  `json:"name"`
	OpeningTime string  `json:"openingTime"`
	ClosingTime string  `json:"closingTime"`
	OpenResult  *string `json:"openResult,omitempty"`
	CloseResult *string `json:"closeResult,omitempty"`
}

// GameView is a game together with its status at the moment it was read.
type GameView struct {
	Game
	Status GameStatus `json:"status"`
}

type CreateGameRequest struct {
	Name        string `json:"name"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

type GameDeclarationRequest struct {
	GameID      int64  `json:"gameId"`
	OpenResult  string `json:"openResult"`
	CloseResult string `json:"closeResult"`
}

type GameWindow struct {
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}
