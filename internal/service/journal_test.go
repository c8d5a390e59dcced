package service

import (
	"context"
	"testing"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/middleware"
	"github.com/a2sh3r/banshi-admin/internal/mocks/repository_mocks"
	"github.com/a2sh3r/banshi-admin/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := repository_mocks.NewMockJournalRepository(ctrl)
	entries := []models.JournalEntry{{ID: "a", Action: models.ActionGameDeleted, TargetID: 3}}
	repo.EXPECT().List(ctx, 20).Return(entries, nil)

	got, err := NewJournalService(repo).Recent(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("actor comes from the request", func(t *testing.T) {
		repo := repository_mocks.NewMockJournalRepository(ctrl)
		ctx := middleware.WithAdmin(context.Background(), "ops")
		repo.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.JournalEntry) error {
			assert.Equal(t, "ops", e.Actor)
			assert.Equal(t, models.ActionUserDeleted, e.Action)
			assert.False(t, e.CreatedAt.IsZero())
			return nil
		})

		record(ctx, repo, models.ActionUserDeleted, 9, "")
	})

	t.Run("journal failure is swallowed", func(t *testing.T) {
		repo := repository_mocks.NewMockJournalRepository(ctrl)
		repo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(apperrors.ErrJournalDisabled)

		assert.NotPanics(t, func() {
			record(context.Background(), repo, models.ActionGameCreated, 1, "x")
		})
	})

	t.Run("nil journal", func(t *testing.T) {
		assert.NotPanics(t, func() {
			record(context.Background(), nil, models.ActionGameCreated, 1, "x")
		})
	})
}
