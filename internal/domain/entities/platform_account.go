package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PlatformAccountStatus represents verification state of a linked account
type PlatformAccountStatus string

const (
	PlatformAccountPending  PlatformAccountStatus = "PENDING"
	PlatformAccountVerified PlatformAccountStatus = "VERIFIED"
	PlatformAccountFailed   PlatformAccountStatus = "FAILED"
)

// PlatformVerifyMethod distinguishes how a platform account was proven
type PlatformVerifyMethod string

const (
	PlatformMethodOAuth   PlatformVerifyMethod = "OAUTH"
	PlatformMethodBioCode PlatformVerifyMethod = "BIO_CODE"
)

// PlatformAccount represents a linked external platform account.
// Uniqueness is per (provider, externalId) — the same external account
// must not serve as proof for two different internal users.
type PlatformAccount struct {
	ID              uuid.UUID             `json:"id"`
	UserID          uuid.UUID             `json:"userId"`
	ProfileID       uuid.UUID             `json:"profileId"`
	Provider        string                `json:"provider"`
	ExternalID      string                `json:"externalId"`
	Handle          string                `json:"handle,omitempty"`
	URL             string                `json:"url,omitempty"`
	Status          PlatformAccountStatus `json:"status"`
	Method          PlatformVerifyMethod  `json:"method"`
	PlatformContext null.String           `json:"platformContext,omitempty"`
	Scopes          null.String           `json:"scopes,omitempty"`
	VerifiedAt      null.Time             `json:"verifiedAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// PlatformIdentity is the uniform output of a provider identity resolution
type PlatformIdentity struct {
	ExternalID      string `json:"externalId"`
	Handle          string `json:"handle"`
	URL             string `json:"url"`
	PlatformContext string `json:"platformContext,omitempty"`
}

// OAuthVerificationInput is the request body for OAuth platform verification
type OAuthVerificationInput struct {
	Provider    string `json:"provider" binding:"required"`
	AccessToken string `json:"accessToken" binding:"required"`
	Context     string `json:"context"`
	Scopes      string `json:"scopes"`
}
