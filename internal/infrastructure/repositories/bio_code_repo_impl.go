package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/internal/infrastructure/models"
)

// BioCodeRepository implements code-in-bio proof artifact operations
type BioCodeRepository struct {
	db *gorm.DB
}

// NewBioCodeRepository creates a new bio code repository
func NewBioCodeRepository(db *gorm.DB) *BioCodeRepository {
	return &BioCodeRepository{db: db}
}

// GetActive returns the newest unexpired ACTIVE code for (user, platform)
func (r *BioCodeRepository) GetActive(ctx context.Context, userID uuid.UUID, platform string) (*entities.BioCode, error) {
	var m models.BioCode
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND platform = ? AND status = ? AND expires_at > ?",
			userID, platform, entities.BioCodeActive, time.Now()).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Create creates a new code
func (r *BioCodeRepository) Create(ctx context.Context, code *entities.BioCode) error {
	m := &models.BioCode{
		ID:         code.ID,
		UserID:     code.UserID,
		Platform:   code.Platform,
		Code:       code.Code,
		ProfileURL: code.ProfileURL,
		Status:     string(code.Status),
		ExpiresAt:  code.ExpiresAt,
		CreatedAt:  code.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// UpdateStatus updates a code's lifecycle state
func (r *BioCodeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BioCodeStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BioCode{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BioCodeRepository) toEntity(m *models.BioCode) *entities.BioCode {
	return &entities.BioCode{
		ID:         m.ID,
		UserID:     m.UserID,
		Platform:   m.Platform,
		Code:       m.Code,
		ProfileURL: m.ProfileURL,
		Status:     entities.BioCodeStatus(m.Status),
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}
