package models

import (
	"time"

	"github.com/google/uuid"
)

type BioCode struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_bio_user_platform"`
	Platform   string    `gorm:"type:varchar(32);not null;index:idx_bio_user_platform"`
	Code       string    `gorm:"type:varchar(160);not null"`
	ProfileURL string    `gorm:"type:varchar(512)"`
	Status     string    `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}
