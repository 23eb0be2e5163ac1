package repositories

import (
	"context"

	"github.com/google/uuid"
	"aeobro.backend/internal/domain/entities"
)

// DomainClaimRepository defines domain claim data operations.
// Claims are keyed by domain and updated in place, never hard-deleted.
type DomainClaimRepository interface {
	GetByDomain(ctx context.Context, domain string) (*entities.DomainClaim, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DomainClaim, error)
	GetByEmailToken(ctx context.Context, token string) (*entities.DomainClaim, error)
	ListVerifiedByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.DomainClaim, error)
	Create(ctx context.Context, claim *entities.DomainClaim) error
	Update(ctx context.Context, claim *entities.DomainClaim) error
}
