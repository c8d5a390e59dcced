package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/adminapi"
	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/cache"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/a2sh3r/banshi-admin/internal/repository"
	"go.uber.org/zap"
)

var usersKey = cache.Key("users", "all")

// UserDirectory is the shared, cached view of all users. Screens that join against users read it
// instead of fetching the list themselves.
type UserDirectory interface {
	UsersByID(ctx context.Context) (map[int64]models.User, error)
	InvalidateUsers(ctx context.Context) error
}

type UserService interface {
	UserDirectory
	ListUsers(ctx context.Context, query string, refresh bool) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) ([]models.User, error)
}

type userService struct {
	client  adminapi.ClientInterface
	cache   cache.Cache
	ttl     time.Duration
	journal repository.JournalRepository
}

func NewUserService(client adminapi.ClientInterface, c cache.Cache, ttl time.Duration, journal repository.JournalRepository) UserService {
	return &userService{
		client:  client,
		cache:   c,
		ttl:     ttl,
		journal: journal,
	}
}

func (s *userService) load(ctx context.Context) ([]models.User, error) {
	users, err := cache.Load(ctx, s.cache, usersKey, s.ttl, s.client.ListUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// ListUsers returns the held user list filtered by query. refresh drops the held list first.
func (s *userService) ListUsers(ctx context.Context, query string, refresh bool) ([]models.User, error) {
	if refresh {
		if err := s.InvalidateUsers(ctx); err != nil {
			return nil, err
		}
	}

	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterUsers(users, query), nil
}

func (s *userService) UsersByID(ctx context.Context) (map[int64]models.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return models.UsersByID(users), nil
}

func (s *userService) InvalidateUsers(ctx context.Context) error {
	if err := s.cache.Delete(ctx, usersKey); err != nil {
		return fmt.Errorf("failed to invalidate users: %w", err)
	}
	return nil
}

// DeleteUser deletes the user remotely and then removes exactly that id from the held list.
func (s *userService) DeleteUser(ctx context.Context, userID int64) ([]models.User, error) {
	if userID <= 0 {
		return nil, apperrors.ErrInvalidUserID
	}

	if err := s.client.DeleteUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	record(ctx, s.journal, models.ActionUserDeleted, userID, "")

	held, ok, err := cache.Peek[[]models.User](ctx, s.cache, usersKey)
	if err != nil {
		logger.Log.Warn("held user list unreadable", zap.Error(err))
	}
	if !ok {
		return s.load(ctx)
	}

	remaining := make([]models.User, 0, len(held))
	for _, u := range held {
		if u.ID != userID {
			remaining = append(remaining, u)
		}
	}

	if err := cache.Store(ctx, s.cache, usersKey, remaining, s.ttl); err != nil {
		logger.Log.Warn("failed to update held user list", zap.Int64("user", userID), zap.Error(err))
	}
	return remaining, nil
}

// FilterUsers keeps users whose name or phone contains query, ignoring case. A blank query keeps everyone.
func FilterUsers(users []models.User, query string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Phone), q) {
			out = append(out, u)
		}
	}
	return out
}
