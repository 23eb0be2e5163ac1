package models

import (
	"time"

	"github.com/google/uuid"
)

type ChangeLogEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EntityKind string    `gorm:"type:varchar(32);not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null"`
	Action     string    `gorm:"type:varchar(16);not null"`
	Field      string    `gorm:"type:varchar(64)"`
	Before     *string   `gorm:"type:text"`
	After      *string   `gorm:"type:text"`
	CreatedAt  time.Time
}

func (ChangeLogEntry) TableName() string {
	return "change_log"
}
