package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/internal/infrastructure/models"
)

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	m, err := r.toModel(profile)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUserID gets a profile by owning user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

// GetBySlug gets a profile by its public slug
func (r *ProfileRepository) GetBySlug(ctx context.Context, slug string) (*entities.Profile, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

func (r *ProfileRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// Update updates profile attributes (not the verification projection)
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	updates := map[string]interface{}{
		"display_name":     profile.DisplayName,
		"legal_name":       profile.LegalName,
		"plan":             profile.Plan,
		"plan_status":      profile.PlanStatus,
		"visibility":       profile.Visibility,
		"unpublish_reason": profile.UnpublishReason.Ptr(),
		"retention_until":  profile.RetentionUntil.Ptr(),
		"updated_at":       time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateVerification writes only the verification projection fields
func (r *ProfileRepository) UpdateVerification(ctx context.Context, profile *entities.Profile) error {
	platforms, err := json.Marshal(profile.VerifiedPlatforms)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"verification_status":  profile.VerificationStatus,
		"verify_method":        profile.VerifyMethod.Ptr(),
		"verify_token":         profile.VerifyToken.Ptr(),
		"verify_marker":        profile.VerifyMarker.Ptr(),
		"verify_domain":        profile.VerifyDomain.Ptr(),
		"verified_platforms":   string(platforms),
		"domain_verified_at":   profile.DomainVerifiedAt.Ptr(),
		"platform_verified_at": profile.PlatformVerifiedAt.Ptr(),
		"verify_checked_at":    profile.VerifyCheckedAt.Ptr(),
		"updated_at":           time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SelectRetentionBatch returns profiles eligible for the retention sweep:
// unpublished because the subscription lapsed, past their retention
// window, not yet deleted, and not leased by a live sweep run.
func (r *ProfileRepository) SelectRetentionBatch(ctx context.Context, now, staleBefore time.Time, limit int) ([]*entities.Profile, error) {
	var rows []models.Profile
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("visibility = ?", entities.VisibilityUnpublished).
		Where("unpublish_reason = ?", entities.UnpublishReasonSubscriptionLapsed).
		Where("retention_until IS NOT NULL AND retention_until <= ?", now).
		Where("(deletion_locked_at IS NULL OR deletion_locked_at < ?)", staleBefore).
		Order("retention_until ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Profile, 0, len(rows))
	for i := range rows {
		e, err := r.toEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// LeaseBatch stamps the deletion lease on the given profiles
func (r *ProfileRepository) LeaseBatch(ctx context.Context, ids []uuid.UUID, holder string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"deletion_locked_at": at,
			"deletion_locked_by": holder,
		}).Error
}

// SoftDeleteBatch transitions the given profiles to DELETED, returning
// how many rows actually changed state.
func (r *ProfileRepository) SoftDeleteBatch(ctx context.Context, ids []uuid.UUID, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("id IN ?", ids).
		Where("visibility <> ?", entities.VisibilityDeleted).
		Updates(map[string]interface{}{
			"visibility": entities.VisibilityDeleted,
			"deleted_at": at,
			"updated_at": at,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *ProfileRepository) toModel(p *entities.Profile) (*models.Profile, error) {
	platforms, err := json.Marshal(p.VerifiedPlatforms)
	if err != nil {
		return nil, err
	}
	return &models.Profile{
		ID:                 p.ID,
		UserID:             p.UserID,
		Slug:               p.Slug,
		DisplayName:        p.DisplayName,
		LegalName:          p.LegalName,
		VerificationStatus: string(p.VerificationStatus),
		VerifyMethod:       p.VerifyMethod.Ptr(),
		VerifyToken:        p.VerifyToken.Ptr(),
		VerifyMarker:       p.VerifyMarker.Ptr(),
		VerifyDomain:       p.VerifyDomain.Ptr(),
		VerifiedPlatforms:  string(platforms),
		DomainVerifiedAt:   p.DomainVerifiedAt.Ptr(),
		PlatformVerifiedAt: p.PlatformVerifiedAt.Ptr(),
		VerifyCheckedAt:    p.VerifyCheckedAt.Ptr(),
		Plan:               string(p.Plan),
		PlanStatus:         string(p.PlanStatus),
		Visibility:         string(p.Visibility),
		UnpublishReason:    p.UnpublishReason.Ptr(),
		RetentionUntil:     p.RetentionUntil.Ptr(),
		DeletionLockedAt:   p.DeletionLockedAt.Ptr(),
		DeletionLockedBy:   p.DeletionLockedBy.Ptr(),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}, nil
}

func (r *ProfileRepository) toEntity(m *models.Profile) (*entities.Profile, error) {
	platforms := map[string]bool{}
	if m.VerifiedPlatforms != "" {
		if err := json.Unmarshal([]byte(m.VerifiedPlatforms), &platforms); err != nil {
			return nil, err
		}
	}

	var deletedAt null.Time
	if m.DeletedAt.Valid {
		deletedAt = null.TimeFrom(m.DeletedAt.Time)
	}

	return &entities.Profile{
		ID:                 m.ID,
		UserID:             m.UserID,
		Slug:               m.Slug,
		DisplayName:        m.DisplayName,
		LegalName:          m.LegalName,
		VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		VerifyMethod:       null.StringFromPtr(m.VerifyMethod),
		VerifyToken:        null.StringFromPtr(m.VerifyToken),
		VerifyMarker:       null.StringFromPtr(m.VerifyMarker),
		VerifyDomain:       null.StringFromPtr(m.VerifyDomain),
		VerifiedPlatforms:  platforms,
		DomainVerifiedAt:   null.TimeFromPtr(m.DomainVerifiedAt),
		PlatformVerifiedAt: null.TimeFromPtr(m.PlatformVerifiedAt),
		VerifyCheckedAt:    null.TimeFromPtr(m.VerifyCheckedAt),
		Plan:               entities.Plan(m.Plan),
		PlanStatus:         entities.PlanStatus(m.PlanStatus),
		Visibility:         entities.Visibility(m.Visibility),
		UnpublishReason:    null.StringFromPtr(m.UnpublishReason),
		RetentionUntil:     null.TimeFromPtr(m.RetentionUntil),
		DeletionLockedAt:   null.TimeFromPtr(m.DeletionLockedAt),
		DeletionLockedBy:   null.StringFromPtr(m.DeletionLockedBy),
		DeletedAt:          deletedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}
