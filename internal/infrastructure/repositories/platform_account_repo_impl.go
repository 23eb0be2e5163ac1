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

// PlatformAccountRepository implements linked platform account operations
type PlatformAccountRepository struct {
	db *gorm.DB
}

// NewPlatformAccountRepository creates a new platform account repository
func NewPlatformAccountRepository(db *gorm.DB) *PlatformAccountRepository {
	return &PlatformAccountRepository{db: db}
}

// GetByID gets an account by ID
func (r *PlatformAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PlatformAccount, error) {
	var m models.PlatformAccount
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByProviderExternalID gets an account by its natural key
func (r *PlatformAccountRepository) GetByProviderExternalID(ctx context.Context, provider, externalID string) (*entities.PlatformAccount, error) {
	var m models.PlatformAccount
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("provider = ? AND external_id = ?", provider, externalID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByUserID lists all accounts linked by a user
func (r *PlatformAccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.PlatformAccount, error) {
	var rows []models.PlatformAccount
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

// ListVerifiedByProfileID lists a profile's accounts in VERIFIED state
func (r *PlatformAccountRepository) ListVerifiedByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.PlatformAccount, error) {
	var rows []models.PlatformAccount
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("profile_id = ? AND status = ?", profileID, entities.PlatformAccountVerified).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(rows), nil
}

// Upsert creates the account or merges into the existing row keyed by
// (provider, external_id). An existing row owned by a different user is
// a conflict, surfaced as ErrAccountClaimed.
func (r *PlatformAccountRepository) Upsert(ctx context.Context, account *entities.PlatformAccount) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var existing models.PlatformAccount
	err := db.Where("provider = ? AND external_id = ?", account.Provider, account.ExternalID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m := r.toModel(account)
		if err := db.Create(m).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAccountClaimed
			}
			return err
		}
		return nil
	}

	if existing.UserID != account.UserID {
		return domainerrors.ErrAccountClaimed
	}

	account.ID = existing.ID
	updates := map[string]interface{}{
		"profile_id":       account.ProfileID,
		"handle":           account.Handle,
		"url":              account.URL,
		"status":           account.Status,
		"method":           account.Method,
		"platform_context": account.PlatformContext.Ptr(),
		"scopes":           account.Scopes.Ptr(),
		"verified_at":      account.VerifiedAt.Ptr(),
		"updated_at":       time.Now(),
	}
	return db.Model(&models.PlatformAccount{}).Where("id = ?", existing.ID).Updates(updates).Error
}

// Delete removes an account outright
func (r *PlatformAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.PlatformAccount{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PlatformAccountRepository) toEntities(rows []models.PlatformAccount) []*entities.PlatformAccount {
	out := make([]*entities.PlatformAccount, 0, len(rows))
	for i := range rows {
		out = append(out, r.toEntity(&rows[i]))
	}
	return out
}

func (r *PlatformAccountRepository) toModel(a *entities.PlatformAccount) *models.PlatformAccount {
	return &models.PlatformAccount{
		ID:              a.ID,
		UserID:          a.UserID,
		ProfileID:       a.ProfileID,
		Provider:        a.Provider,
		ExternalID:      a.ExternalID,
		Handle:          a.Handle,
		URL:             a.URL,
		Status:          string(a.Status),
		Method:          string(a.Method),
		PlatformContext: a.PlatformContext.Ptr(),
		Scopes:          a.Scopes.Ptr(),
		VerifiedAt:      a.VerifiedAt.Ptr(),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (r *PlatformAccountRepository) toEntity(m *models.PlatformAccount) *entities.PlatformAccount {
	return &entities.PlatformAccount{
		ID:              m.ID,
		UserID:          m.UserID,
		ProfileID:       m.ProfileID,
		Provider:        m.Provider,
		ExternalID:      m.ExternalID,
		Handle:          m.Handle,
		URL:             m.URL,
		Status:          entities.PlatformAccountStatus(m.Status),
		Method:          entities.PlatformVerifyMethod(m.Method),
		PlatformContext: null.StringFromPtr(m.PlatformContext),
		Scopes:          null.StringFromPtr(m.Scopes),
		VerifiedAt:      null.TimeFromPtr(m.VerifiedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
