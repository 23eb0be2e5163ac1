package repositories

import (
	"context"

	"gorm.io/gorm"
	"aeobro.backend/internal/domain/entities"
	"aeobro.backend/internal/infrastructure/models"
)

// ChangeLogRepository implements append-only audit writes
type ChangeLogRepository struct {
	db *gorm.DB
}

// NewChangeLogRepository creates a new change log repository
func NewChangeLogRepository(db *gorm.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Append writes one audit record. Callers treat failures as
// best-effort; the write deliberately does not join the caller's
// transaction so a rollback of the primary mutation cannot be caused
// by (or cause) an audit failure.
func (r *ChangeLogRepository) Append(ctx context.Context, entry *entities.ChangeLogEntry) error {
	m := &models.ChangeLogEntry{
		ID:         entry.ID,
		UserID:     entry.UserID,
		ProfileID:  entry.ProfileID,
		EntityKind: entry.EntityKind,
		EntityID:   entry.EntityID,
		Action:     string(entry.Action),
		Field:      entry.Field,
		Before:     entry.Before.Ptr(),
		After:      entry.After.Ptr(),
		CreatedAt:  entry.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
