package models

import (
	"time"

	"github.com/google/uuid"
)

type DomainClaim struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Domain        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TxtToken      string    `gorm:"type:varchar(128);not null"`
	DNSVerified   bool      `gorm:"not null;default:false"`
	Status        string    `gorm:"type:varchar(16);not null;default:'PENDING'"`
	EmailIssued   bool      `gorm:"not null;default:false"`
	EmailToken    *string   `gorm:"type:varchar(128)"`
	EmailVerified bool      `gorm:"not null;default:false"`
	VerifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
