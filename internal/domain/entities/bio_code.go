package entities

import (
	"time"

	"github.com/google/uuid"
)

// BioCodeStatus represents the lifecycle of a code-in-bio proof
type BioCodeStatus string

const (
	BioCodeActive   BioCodeStatus = "ACTIVE"
	BioCodeVerified BioCodeStatus = "VERIFIED"
	BioCodeExpired  BioCodeStatus = "EXPIRED"
)

// BioCode is a transient proof artifact for code-in-bio verification.
// An unexpired code for the same (user, platform) is reused rather than
// re-minted so a code the user already pasted stays valid.
type BioCode struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"userId"`
	Platform   string        `json:"platform"`
	Code       string        `json:"code"`
	ProfileURL string        `json:"profileUrl,omitempty"`
	Status     BioCodeStatus `json:"status"`
	ExpiresAt  time.Time     `json:"expiresAt"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Expired reports whether the code is past its TTL at the given instant.
func (b *BioCode) Expired(now time.Time) bool {
	return now.After(b.ExpiresAt)
}

// BioVerificationInput is the request body for a code-in-bio check
type BioVerificationInput struct {
	Platform   string `json:"platform" binding:"required"`
	ProfileURL string `json:"profileUrl" binding:"omitempty,url"`
}
