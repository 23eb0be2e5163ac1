package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Slug               string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	DisplayName        string    `gorm:"type:varchar(200);not null"`
	LegalName          string    `gorm:"type:varchar(200)"`
	VerificationStatus string    `gorm:"type:varchar(32);not null;default:'UNVERIFIED'"`
	VerifyMethod       *string   `gorm:"type:varchar(16)"`
	VerifyToken        *string   `gorm:"type:varchar(128)"`
	VerifyMarker       *string   `gorm:"type:varchar(160)"`
	VerifyDomain       *string   `gorm:"type:varchar(255)"`
	VerifiedPlatforms  string    `gorm:"type:text"` // JSON object: provider -> true
	DomainVerifiedAt   *time.Time
	PlatformVerifiedAt *time.Time
	VerifyCheckedAt    *time.Time
	Plan               string  `gorm:"type:varchar(16);not null;default:'FREE'"`
	PlanStatus         string  `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
	Visibility         string  `gorm:"type:varchar(16);not null;default:'UNPUBLISHED'"`
	UnpublishReason    *string `gorm:"type:varchar(32)"`
	RetentionUntil     *time.Time
	DeletionLockedAt   *time.Time
	DeletionLockedBy   *string `gorm:"type:varchar(64)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
