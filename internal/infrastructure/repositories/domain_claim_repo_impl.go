package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/internal/infrastructure/models"
)

// DomainClaimRepository implements domain claim data operations
type DomainClaimRepository struct {
	db *gorm.DB
}

// NewDomainClaimRepository creates a new domain claim repository
func NewDomainClaimRepository(db *gorm.DB) *DomainClaimRepository {
	return &DomainClaimRepository{db: db}
}

// GetByDomain gets a claim by its domain string
func (r *DomainClaimRepository) GetByDomain(ctx context.Context, domain string) (*entities.DomainClaim, error) {
	var m models.DomainClaim
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("domain = ?", domain).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByID gets a claim by ID
func (r *DomainClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DomainClaim, error) {
	var m models.DomainClaim
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmailToken gets a claim by its outstanding email proof token
func (r *DomainClaimRepository) GetByEmailToken(ctx context.Context, token string) (*entities.DomainClaim, error) {
	var m models.DomainClaim
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email_token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListVerifiedByUserID lists the user's claims in VERIFIED state
func (r *DomainClaimRepository) ListVerifiedByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.DomainClaim, error) {
	var rows []models.DomainClaim
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entities.DomainClaimVerified).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.DomainClaim, 0, len(rows))
	for i := range rows {
		out = append(out, r.toEntity(&rows[i]))
	}
	return out, nil
}

// Create creates a new claim. A unique index on domain resolves
// concurrent claim races; the loser sees ErrAlreadyExists.
func (r *DomainClaimRepository) Create(ctx context.Context, claim *entities.DomainClaim) error {
	m := r.toModel(claim)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update updates a claim in place
func (r *DomainClaimRepository) Update(ctx context.Context, claim *entities.DomainClaim) error {
	updates := map[string]interface{}{
		"user_id":        claim.UserID,
		"txt_token":      claim.TxtToken,
		"dns_verified":   claim.DNSVerified,
		"status":         claim.Status,
		"email_issued":   claim.EmailIssued,
		"email_token":    claim.EmailToken.Ptr(),
		"email_verified": claim.EmailVerified,
		"verified_at":    claim.VerifiedAt.Ptr(),
		"updated_at":     time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.DomainClaim{}).Where("id = ?", claim.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *DomainClaimRepository) toModel(c *entities.DomainClaim) *models.DomainClaim {
	return &models.DomainClaim{
		ID:            c.ID,
		Domain:        c.Domain,
		UserID:        c.UserID,
		TxtToken:      c.TxtToken,
		DNSVerified:   c.DNSVerified,
		Status:        string(c.Status),
		EmailIssued:   c.EmailIssued,
		EmailToken:    c.EmailToken.Ptr(),
		EmailVerified: c.EmailVerified,
		VerifiedAt:    c.VerifiedAt.Ptr(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (r *DomainClaimRepository) toEntity(m *models.DomainClaim) *entities.DomainClaim {
	return &entities.DomainClaim{
		ID:            m.ID,
		Domain:        m.Domain,
		UserID:        m.UserID,
		TxtToken:      m.TxtToken,
		DNSVerified:   m.DNSVerified,
		Status:        entities.DomainClaimStatus(m.Status),
		EmailIssued:   m.EmailIssued,
		EmailToken:    null.StringFromPtr(m.EmailToken),
		EmailVerified: m.EmailVerified,
		VerifiedAt:    null.TimeFromPtr(m.VerifiedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
