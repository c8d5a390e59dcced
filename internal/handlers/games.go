package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/service"
)

type createGameRequest struct {
	Name        string `json:"name"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

type declareResultRequest struct {
	GameID      json.Number `json:"gameId"`
	OpenResult  string      `json:"openResult" validate:"max=32"`
	CloseResult string      `json:"closeResult" validate:"max=32"`
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to fetch games")
		return
	}
	writeJSON(w, http.StatusOK, "", games)
}

func (h *Handler) GetGameWindow(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "", h.gameService.DefaultWindow())
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	opening, err := h.parseFormTime(req.OpeningTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid opening time")
		return
	}
	closing, err := h.parseFormTime(req.ClosingTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid closing time")
		return
	}

	game, err := h.gameService.CreateGame(r.Context(), req.Name, opening, closing)
	if err != nil {
		writeServiceError(w, err, "Failed to create game")
		return
	}
	writeJSON(w, http.StatusCreated, "Game created successfully", game)
}

// parseFormTime reads a form time; a blank value is the zero time so the service can report which field is missing.
func (h *Handler) parseFormTime(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return service.ParseGameTime(s, h.loc)
}

func (h *Handler) DeclareResult(w http.ResponseWriter, r *http.Request) {
	var req declareResultRequest
	if err := decodeJSON(r, &req); err != nil || h.validate.Struct(req) != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	err := h.gameService.DeclareResult(r.Context(), req.GameID.String(), req.OpenResult, req.CloseResult)
	if err != nil {
		writeServiceError(w, err, "Failed to declare result")
		return
	}
	writeJSON[any](w, http.StatusOK, "Result declared successfully", nil)
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "gameID", apperrors.ErrInvalidGameID)
	if err != nil {
		writeServiceError(w, err, "Failed to delete game")
		return
	}

	games, err := h.gameService.DeleteGame(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to delete game")
		return
	}
	writeJSON(w, http.StatusOK, "Game deleted successfully", games)
}
