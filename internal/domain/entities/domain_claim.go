package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DomainClaimStatus represents the lifecycle of a domain claim
type DomainClaimStatus string

const (
	DomainClaimPending  DomainClaimStatus = "PENDING"
	DomainClaimPartial  DomainClaimStatus = "PARTIAL"
	DomainClaimVerified DomainClaimStatus = "VERIFIED"
)

// DomainClaim represents a user's assertion of control over a domain.
// The domain string is the natural unique key; a claim is owned by
// exactly one user at a time and is updated in place, never hard-deleted.
type DomainClaim struct {
	ID            uuid.UUID         `json:"id"`
	Domain        string            `json:"domain"`
	UserID        uuid.UUID         `json:"userId"`
	TxtToken      string            `json:"-"`
	DNSVerified   bool              `json:"dnsVerified"`
	Status        DomainClaimStatus `json:"status"`
	EmailIssued   bool              `json:"emailIssued"`
	EmailToken    null.String       `json:"-"`
	EmailVerified bool              `json:"emailVerified"`
	VerifiedAt    null.Time         `json:"verifiedAt,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// StartDomainVerificationInput is the request body for starting DNS verification
type StartDomainVerificationInput struct {
	Domain string `json:"domain" binding:"required,fqdn"`
}

// DomainVerificationInstructions tells the caller which record to publish
type DomainVerificationInstructions struct {
	RecordHost         string   `json:"recordHost"`
	RecordType         string   `json:"recordType"`
	RecordValue        string   `json:"recordValue"`
	LegacyAlternatives []string `json:"legacyAlternatives"`
}
