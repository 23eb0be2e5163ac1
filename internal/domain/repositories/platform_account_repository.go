package repositories

import (
	"context"

	"github.com/google/uuid"
	"aeobro.backend/internal/domain/entities"
)

// PlatformAccountRepository defines linked platform account operations.
// Uniqueness is per (provider, externalId); Upsert merges into an
// existing row on re-verification instead of duplicating.
type PlatformAccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PlatformAccount, error)
	GetByProviderExternalID(ctx context.Context, provider, externalID string) (*entities.PlatformAccount, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.PlatformAccount, error)
	ListVerifiedByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.PlatformAccount, error)
	Upsert(ctx context.Context, account *entities.PlatformAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BioCodeRepository defines code-in-bio proof artifact operations
type BioCodeRepository interface {
	GetActive(ctx context.Context, userID uuid.UUID, platform string) (*entities.BioCode, error)
	Create(ctx context.Context, code *entities.BioCode) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BioCodeStatus) error
}

// ChangeLogRepository appends audit records. Entries are append-only.
type ChangeLogRepository interface {
	Append(ctx context.Context, entry *entities.ChangeLogEntry) error
}
