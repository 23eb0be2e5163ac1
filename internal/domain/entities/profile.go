package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus is the profile-level verification projection.
// It is derived from proof rows (DomainClaim, PlatformAccount) and is
// never the sole source of truth.
type VerificationStatus string

const (
	VerificationUnverified       VerificationStatus = "UNVERIFIED"
	VerificationPlatformVerified VerificationStatus = "PLATFORM_VERIFIED"
	VerificationDomainVerified   VerificationStatus = "DOMAIN_VERIFIED"
)

// VerifyMethod identifies the modality of the pending verification.
type VerifyMethod string

const (
	VerifyMethodDNS      VerifyMethod = "DNS"
	VerifyMethodPlatform VerifyMethod = "PLATFORM"
)

// Plan represents a billing tier
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
	PlanTeam Plan = "TEAM"
)

// PlanStatus represents billing lifecycle state
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "ACTIVE"
	PlanStatusTrialing PlanStatus = "TRIALING"
	PlanStatusPastDue  PlanStatus = "PAST_DUE"
	PlanStatusCanceled PlanStatus = "CANCELED"
)

// Visibility represents profile publication state
type Visibility string

const (
	VisibilityPublished   Visibility = "PUBLISHED"
	VisibilityUnpublished Visibility = "UNPUBLISHED"
	VisibilityDeleted     Visibility = "DELETED"
)

// UnpublishReason records why a profile was unpublished
type UnpublishReason string

const (
	UnpublishReasonSubscriptionLapsed UnpublishReason = "SUBSCRIPTION_LAPSED"
	UnpublishReasonUserRequest        UnpublishReason = "USER_REQUEST"
)

// Profile represents a published entity profile
type Profile struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"userId"`
	Slug               string             `json:"slug"`
	DisplayName        string             `json:"displayName"`
	LegalName          string             `json:"legalName,omitempty"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	VerifyMethod       null.String        `json:"verifyMethod,omitempty"`
	VerifyToken        null.String        `json:"-"`
	VerifyMarker       null.String        `json:"-"`
	VerifyDomain       null.String        `json:"verifyDomain,omitempty"`
	VerifiedPlatforms  map[string]bool    `json:"verifiedPlatforms,omitempty"`
	DomainVerifiedAt   null.Time          `json:"domainVerifiedAt,omitempty"`
	PlatformVerifiedAt null.Time          `json:"platformVerifiedAt,omitempty"`
	VerifyCheckedAt    null.Time          `json:"verifyCheckedAt,omitempty"`
	Plan               Plan               `json:"plan"`
	PlanStatus         PlanStatus         `json:"planStatus"`
	Visibility         Visibility         `json:"visibility"`
	UnpublishReason    null.String        `json:"unpublishReason,omitempty"`
	RetentionUntil     null.Time          `json:"retentionUntil,omitempty"`
	DeletionLockedAt   null.Time          `json:"-"`
	DeletionLockedBy   null.String        `json:"-"`
	DeletedAt          null.Time          `json:"-"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// CreateProfileInput represents input for creating a profile
type CreateProfileInput struct {
	Slug        string `json:"slug" binding:"required,min=3,max=64"`
	DisplayName string `json:"displayName" binding:"required,min=1,max=200"`
	LegalName   string `json:"legalName" binding:"max=200"`
}

// UpdateProfileInput represents input for updating a profile
type UpdateProfileInput struct {
	DisplayName *string `json:"displayName,omitempty"`
	LegalName   *string `json:"legalName,omitempty"`
	Visibility  *string `json:"visibility,omitempty"`
}
