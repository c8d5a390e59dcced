package service

import (
	"context"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/middleware"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/a2sh3r/banshi-admin/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const anonymousActor = "anonymous"

type JournalService interface {
	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

type journalService struct {
	repo repository.JournalRepository
}

func NewJournalService(repo repository.JournalRepository) JournalService {
	return &journalService{repo: repo}
}

func (s *journalService) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	return s.repo.List(ctx, limit)
}

// record writes an entry for an action that already succeeded remotely, so a failure is only logged.
func record(ctx context.Context, journal repository.JournalRepository, action models.JournalAction, targetID int64, detail string) {
	if journal == nil {
		return
	}

	actor, ok := middleware.GetAdmin(ctx)
	if !ok || actor == "" {
		actor = anonymousActor
	}

	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		TargetID:  targetID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}

	if err := journal.Record(ctx, entry); err != nil {
		logger.Log.Warn("failed to journal admin action",
			zap.String("action", string(action)),
			zap.Int64("target", targetID),
			zap.Error(err),
		)
	}
}
