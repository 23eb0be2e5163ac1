package models

import (
	"time"

	"github.com/google/uuid"
)

// PlatformAccount rows are removed outright on disconnect; a tombstone
// under the (provider, external_id) unique index would block re-linking.
type PlatformAccount struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider        string    `gorm:"type:varchar(32);not null;index:idx_provider_external,unique"`
	ExternalID      string    `gorm:"type:varchar(255);not null;index:idx_provider_external,unique"`
	Handle          string    `gorm:"type:varchar(255)"`
	URL             string    `gorm:"type:varchar(512)"`
	Status          string    `gorm:"type:varchar(16);not null;default:'PENDING'"`
	Method          string    `gorm:"type:varchar(16);not null"`
	PlatformContext *string   `gorm:"type:varchar(64)"`
	Scopes          *string   `gorm:"type:text"`
	VerifiedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
