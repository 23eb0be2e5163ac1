package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"aeobro.backend/internal/domain/entities"
	"aeobro.backend/internal/infrastructure/models"
)

func TestChangeLogRepository_Append(t *testing.T) {
	db := newTestDB(t)
	createChangeLogTable(t, db)
	repo := NewChangeLogRepository(db)
	ctx := context.Background()

	entry := &entities.ChangeLogEntry{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ProfileID:  uuid.New(),
		EntityKind: "DomainClaim",
		EntityID:   uuid.New(),
		Action:     entities.ChangeLogUpdate,
		Field:      "status",
		Before:     null.StringFrom("PENDING"),
		After:      null.StringFrom("VERIFIED"),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Append(ctx, entry))

	var rows []models.ChangeLogEntry
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, "DomainClaim", rows[0].EntityKind)
	require.Equal(t, "VERIFIED", *rows[0].After)
}

func TestChangeLogRepository_AppendOutsideTransaction(t *testing.T) {
	db := newTestDB(t)
	createChangeLogTable(t, db)
	repo := NewChangeLogRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	// The audit row must survive a rollback of the surrounding work
	_ = uow.Do(ctx, func(txCtx context.Context) error {
		require.NoError(t, repo.Append(txCtx, &entities.ChangeLogEntry{
			ID:         uuid.New(),
			UserID:     uuid.New(),
			ProfileID:  uuid.New(),
			EntityKind: "Profile",
			EntityID:   uuid.New(),
			Action:     entities.ChangeLogCreate,
			CreatedAt:  time.Now(),
		}))
		return context.Canceled
	})

	var count int64
	require.NoError(t, db.Model(&models.ChangeLogEntry{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
