package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ChangeLogAction is the kind of mutation being recorded
type ChangeLogAction string

const (
	ChangeLogCreate ChangeLogAction = "CREATE"
	ChangeLogUpdate ChangeLogAction = "UPDATE"
	ChangeLogDelete ChangeLogAction = "DELETE"
)

// ChangeLogEntry is an append-only audit record. Entries are never
// mutated or deleted.
type ChangeLogEntry struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	ProfileID  uuid.UUID       `json:"profileId"`
	EntityKind string          `json:"entityKind"`
	EntityID   uuid.UUID       `json:"entityId"`
	Action     ChangeLogAction `json:"action"`
	Field      string          `json:"field,omitempty"`
	Before     null.String     `json:"before,omitempty"`
	After      null.String     `json:"after,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
