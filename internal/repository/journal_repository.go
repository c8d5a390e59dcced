package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultJournalLimit = 50
	MaxJournalLimit     = 500
)

type JournalRepository interface {
	Record(ctx context.Context, entry models.JournalEntry) error
	List(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

type journalRepo struct {
	db *sql.DB
}

func NewJournalRepository(db *sql.DB) JournalRepository {
	return &journalRepo{db: db}
}

func (r *journalRepo) Record(ctx context.Context, entry models.JournalEntry) error {
	query := `
		INSERT INTO admin_journal (id, actor, action, target_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.Actor, string(entry.Action), entry.TargetID, entry.Detail, entry.CreatedAt)
	if err != nil {
		logger.Log.Error("failed to record journal entry", zap.String("action", string(entry.Action)), zap.Error(err))
		return err
	}
	return nil
}

// List returns the most recent entries first.
func (r *journalRepo) List(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	limit = clampLimit(limit)

	query := `
		SELECT id, actor, action, target_id, detail, created_at
		FROM admin_journal
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.Log.Error("failed to query journal", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	entries := make([]models.JournalEntry, 0, limit)
	for rows.Next() {
		var e models.JournalEntry
		var action string
		if err := rows.Scan(&e.ID, &e.Actor, &action, &e.TargetID, &e.Detail, &e.CreatedAt); err != nil {
			logger.Log.Error("failed to scan journal entry", zap.Error(err))
			return nil, err
		}
		e.Action = models.JournalAction(action)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

type nopJournal struct{}

// NewNopJournal is used when no journal database is configured. Records are dropped.
func NewNopJournal() JournalRepository {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, models.JournalEntry) error {
	return nil
}

func (nopJournal) List(context.Context, int) ([]models.JournalEntry, error) {
	return nil, apperrors.ErrJournalDisabled
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultJournalLimit
	case limit > MaxJournalLimit:
		return MaxJournalLimit
	default:
		return limit
	}
}
