package usecases

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/internal/domain/repositories"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)

// retentionGrace is how long an unpublished, lapsed profile is kept
// before the sweep may delete it.
const retentionGrace = 30 * 24 * time.Hour

// ProfileUsecase handles profile lifecycle operations
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
	changeLog   repositories.ChangeLogRepository
	uow         repositories.UnitOfWork
	now         func() time.Time
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	profileRepo repositories.ProfileRepository,
	changeLog repositories.ChangeLogRepository,
	uow repositories.UnitOfWork,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo: profileRepo,
		changeLog:   changeLog,
		uow:         uow,
		now:         time.Now,
	}
}

// Create creates the caller's profile. One profile per user; the slug
// is globally unique and normalized to lowercase.
func (u *ProfileUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateProfileInput) (*entities.Profile, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, domainerrors.BadRequest("slug may contain only lowercase letters, digits and hyphens")
	}

	if _, err := u.profileRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domainerrors.Conflict("profile already exists for this account")
	}

	now := u.now()
	profile := &entities.Profile{
		ID:                 uuid.New(),
		UserID:             userID,
		Slug:               slug,
		DisplayName:        input.DisplayName,
		LegalName:          input.LegalName,
		VerificationStatus: entities.VerificationUnverified,
		Plan:               entities.PlanFree,
		PlanStatus:         entities.PlanStatusActive,
		Visibility:         entities.VisibilityPublished,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.profileRepo.Create(txCtx, profile); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("slug is already taken")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.appendLog(ctx, userID, profile.ID, entities.ChangeLogCreate, "profile", "", slug)
	return profile, nil
}

// GetByUserID returns the caller's own profile
func (u *ProfileUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

// GetBySlug returns a profile by public slug
func (u *ProfileUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Profile, error) {
	return u.profileRepo.GetBySlug(ctx, strings.ToLower(slug))
}

// Update applies a partial update to the caller's profile. Visibility
// moves between PUBLISHED and UNPUBLISHED only; deletion is owned by
// the retention sweep, not this endpoint.
func (u *ProfileUsecase) Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Visibility == entities.VisibilityDeleted {
		return nil, domainerrors.NotFound("profile not found")
	}

	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.LegalName != nil {
		profile.LegalName = *input.LegalName
	}
	if input.Visibility != nil {
		if err := u.applyVisibility(profile, entities.Visibility(*input.Visibility)); err != nil {
			return nil, err
		}
	}
	profile.UpdatedAt = u.now()

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	u.appendLog(ctx, userID, profile.ID, entities.ChangeLogUpdate, "profile", "", "")
	return profile, nil
}

// MarkSubscriptionLapsed unpublishes a profile whose billing lapsed
// and starts its retention clock. Idempotent: an already-lapsed
// profile keeps its original retention deadline.
func (u *ProfileUsecase) MarkSubscriptionLapsed(ctx context.Context, userID uuid.UUID) error {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if profile.Visibility == entities.VisibilityUnpublished &&
		profile.UnpublishReason.String == string(entities.UnpublishReasonSubscriptionLapsed) {
		return nil
	}

	now := u.now()
	profile.PlanStatus = entities.PlanStatusPastDue
	profile.Visibility = entities.VisibilityUnpublished
	profile.UnpublishReason = null.StringFrom(string(entities.UnpublishReasonSubscriptionLapsed))
	profile.RetentionUntil = null.TimeFrom(now.Add(retentionGrace))
	profile.UpdatedAt = now

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return err
	}
	u.appendLog(ctx, userID, profile.ID, entities.ChangeLogUpdate, "visibility",
		string(entities.VisibilityPublished), string(entities.VisibilityUnpublished))
	return nil
}

func (u *ProfileUsecase) applyVisibility(profile *entities.Profile, next entities.Visibility) error {
	switch next {
	case entities.VisibilityPublished:
		profile.Visibility = entities.VisibilityPublished
		profile.UnpublishReason = null.String{}
		profile.RetentionUntil = null.Time{}
	case entities.VisibilityUnpublished:
		profile.Visibility = entities.VisibilityUnpublished
		profile.UnpublishReason = null.StringFrom(string(entities.UnpublishReasonUserRequest))
		profile.RetentionUntil = null.TimeFrom(u.now().Add(retentionGrace))
	default:
		return domainerrors.BadRequest("visibility must be PUBLISHED or UNPUBLISHED")
	}
	return nil
}

func (u *ProfileUsecase) appendLog(ctx context.Context, userID, profileID uuid.UUID, action entities.ChangeLogAction, field, before, after string) {
	entry := &entities.ChangeLogEntry{
		ID:         uuid.New(),
		UserID:     userID,
		ProfileID:  profileID,
		EntityKind: "Profile",
		EntityID:   profileID,
		Action:     action,
		Field:      field,
		CreatedAt:  u.now(),
	}
	if before != "" {
		entry.Before = null.StringFrom(before)
	}
	if after != "" {
		entry.After = null.StringFrom(after)
	}
	_ = u.changeLog.Append(ctx, entry)
}
