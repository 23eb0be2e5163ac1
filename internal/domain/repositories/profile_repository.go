package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"aeobro.backend/internal/domain/entities"
)

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error

	// UpdateVerification writes only the verification projection fields
	// (status, method, token, marker, domain, timestamps, platform map).
	UpdateVerification(ctx context.Context, profile *entities.Profile) error

	// Retention sweep support. SelectRetentionBatch returns unpublished,
	// lapsed, retention-expired profiles whose lease is absent or older
	// than staleBefore. LeaseBatch stamps the lease; SoftDeleteBatch
	// transitions rows to DELETED and reports how many actually changed.
	SelectRetentionBatch(ctx context.Context, now, staleBefore time.Time, limit int) ([]*entities.Profile, error)
	LeaseBatch(ctx context.Context, ids []uuid.UUID, holder string, at time.Time) error
	SoftDeleteBatch(ctx context.Context, ids []uuid.UUID, at time.Time) (int64, error)
}
