package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/adminapi"
	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/a2sh3r/banshi-admin/internal/repository"
	"go.uber.org/zap"
)

// LocalTimeLayout is the wall-clock format the admin API expects for game times: local time, no zone suffix.
const LocalTimeLayout = "2006-01-02T15:04:05"

const defaultGameDuration = time.Hour

type GameService interface {
	ListGames(ctx context.Context) ([]models.GameView, error)
	CreateGame(ctx context.Context, name string, opening, closing time.Time) (*models.Game, error)
	DeclareResult(ctx context.Context, gameID, openResult, closeResult string) error
	DeleteGame(ctx context.Context, gameID int64) ([]models.GameView, error)
	DefaultWindow() models.GameWindow
}

type gameService struct {
	client  adminapi.ClientInterface
	journal repository.JournalRepository
	loc     *time.Location
	now     func() time.Time
}

func NewGameService(client adminapi.ClientInterface, journal repository.JournalRepository, loc *time.Location) GameService {
	if loc == nil {
		loc = time.Local
	}
	return &gameService{
		client:  client,
		journal: journal,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *gameService) ListGames(ctx context.Context) ([]models.GameView, error) {
	games, err := s.client.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	return s.views(games), nil
}

func (s *gameService) views(games []models.Game) []models.GameView {
	now := s.now()
	out := make([]models.GameView, 0, len(games))
	for _, g := range games {
		out = append(out, models.GameView{Game: g, Status: DeriveGameStatus(g, now, s.loc)})
	}
	return out
}

// CreateGame validates the form and submits it. Nothing is sent unless closing is strictly after opening.
func (s *gameService) CreateGame(ctx context.Context, name string, opening, closing time.Time) (*models.Game, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, apperrors.ErrGameNameRequired
	case opening.IsZero():
		return nil, apperrors.ErrOpeningTimeRequired
	case closing.IsZero():
		return nil, apperrors.ErrClosingTimeRequired
	case !closing.After(opening):
		return nil, apperrors.ErrInvalidGameWindow
	}

	req := models.CreateGameRequest{
		Name:        name,
		OpeningTime: FormatLocalTime(opening, s.loc),
		ClosingTime: FormatLocalTime(closing, s.loc),
	}

	game, err := s.client.CreateGame(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create game %q: %w", name, err)
	}

	var id int64
	if game != nil {
		id = game.ID
	}
	logger.Log.Info("game created", zap.String("name", name), zap.Int64("game", id))
	record(ctx, s.journal, models.ActionGameCreated, id, name)

	return game, nil
}

func (s *gameService) DeclareResult(ctx context.Context, gameID, openResult, closeResult string) error {
	gameID = strings.TrimSpace(gameID)
	openResult = strings.TrimSpace(openResult)
	closeResult = strings.TrimSpace(closeResult)

	if gameID == "" || openResult == "" || closeResult == "" {
		return apperrors.ErrMissingDeclarationFields
	}

	id, err := strconv.ParseInt(gameID, 10, 64)
	if err != nil || id <= 0 {
		return apperrors.ErrInvalidGameID
	}

	req := models.GameDeclarationRequest{
		GameID:      id,
		OpenResult:  openResult,
		CloseResult: closeResult,
	}
	if err := s.client.DeclareResult(ctx, req); err != nil {
		return fmt.Errorf("failed to declare result for game %d: %w", id, err)
	}

	record(ctx, s.journal, models.ActionResultDeclared, id, openResult+"/"+closeResult)
	return nil
}

// DeleteGame removes the game remotely and returns the current list without it.
func (s *gameService) DeleteGame(ctx context.Context, gameID int64) ([]models.GameView, error) {
	if gameID <= 0 {
		return nil, apperrors.ErrInvalidGameID
	}

	if err := s.client.DeleteGame(ctx, gameID); err != nil {
		return nil, fmt.Errorf("failed to delete game %d: %w", gameID, err)
	}
	record(ctx, s.journal, models.ActionGameDeleted, gameID, "")

	games, err := s.client.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("game %d deleted but listing failed: %w", gameID, err)
	}

	remaining := games[:0:0]
	for _, g := range games {
		if g.ID != gameID {
			remaining = append(remaining, g)
		}
	}
	return s.views(remaining), nil
}

// DefaultWindow proposes a game that opens now and closes an hour later.
func (s *gameService) DefaultWindow() models.GameWindow {
	now := s.now()
	return models.GameWindow{
		OpeningTime: FormatLocalTime(now, s.loc),
		ClosingTime: FormatLocalTime(now.Add(defaultGameDuration), s.loc),
	}
}

func FormatLocalTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LocalTimeLayout)
}

// ParseGameTime reads a game time. Values without a zone are wall-clock times in loc;
// RFC 3339 values keep their own offset.
func ParseGameTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(LocalTimeLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// GameStatusAt classifies now against the [opening, closing] window, inclusive on both ends.
func GameStatusAt(opening, closing, now time.Time) models.GameStatus {
	switch {
	case now.Before(opening):
		return models.GameStatusUpcoming
	case !now.After(closing):
		return models.GameStatusActive
	default:
		return models.GameStatusClosed
	}
}

// DeriveGameStatus computes a game's status at now. A game with an unreadable time is closed.
func DeriveGameStatus(g models.Game, now time.Time, loc *time.Location) models.GameStatus {
	opening, err := ParseGameTime(g.OpeningTime, loc)
	if err != nil {
		return models.GameStatusClosed
	}
	closing, err := ParseGameTime(g.ClosingTime, loc)
	if err != nil {
		return models.GameStatusClosed
	}
	return GameStatusAt(opening, closing, now)
}
