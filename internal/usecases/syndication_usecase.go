package usecases

import (
	"context"

	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/internal/domain/repositories"
)

// SyndicationGate holds the eligibility switches for the public feed.
// The gate is permissive by union: a profile passes when ANY enabled
// condition holds, so turning a switch on can only widen the audience.
type SyndicationGate struct {
	EnforcePlan           bool
	AllowPlatformVerified bool
}

// Allowed reports whether a profile may appear in public syndication
// output. Unpublished and deleted profiles never pass regardless of
// plan or verification.
func (g SyndicationGate) Allowed(p *entities.Profile) bool {
	if p == nil || p.Visibility != entities.VisibilityPublished {
		return false
	}

	if p.VerificationStatus == entities.VerificationDomainVerified {
		return true
	}
	if g.AllowPlatformVerified && p.VerificationStatus == entities.VerificationPlatformVerified {
		return true
	}

	// The plan grant only exists while plan enforcement is on; with it
	// off an unverified profile has no remaining path through the gate.
	if g.EnforcePlan {
		limits := PlanLimitsFor(p.Plan)
		return limits.SyndicationEligible && planStatusActive(p.PlanStatus)
	}
	return false
}

// SyndicationUsecase serves the public machine-readable profile feed
type SyndicationUsecase struct {
	profileRepo repositories.ProfileRepository
	gate        SyndicationGate
}

// NewSyndicationUsecase creates the syndication usecase
func NewSyndicationUsecase(profileRepo repositories.ProfileRepository, gate SyndicationGate) *SyndicationUsecase {
	return &SyndicationUsecase{
		profileRepo: profileRepo,
		gate:        gate,
	}
}

// GetBySlug returns the public profile for a slug. A profile that
// exists but fails the gate is indistinguishable from one that does
// not exist; callers get not-found either way.
func (u *SyndicationUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !u.gate.Allowed(profile) {
		return nil, domainerrors.NotFound("profile not found")
	}
	return profile, nil
}

func planStatusActive(status entities.PlanStatus) bool {
	return activePlanStatuses[status]
}
