package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
)

type profileFixture struct {
	profileRepo *MockProfileRepository
	changeLog   *MockChangeLogRepository
	uow         *MockUnitOfWork
	now         time.Time
	usecase     *ProfileUsecase
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		profileRepo: new(MockProfileRepository),
		changeLog:   new(MockChangeLogRepository),
		uow:         new(MockUnitOfWork),
		now:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.usecase = NewProfileUsecase(f.profileRepo, f.changeLog, f.uow)
	f.usecase.now = func() time.Time { return f.now }
	f.changeLog.On("Append", mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func TestProfileUsecase_Create(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.Profile) bool {
		return p.Slug == "acme-inc" && p.UserID == userID &&
			p.Plan == entities.PlanFree && p.Visibility == entities.VisibilityPublished &&
			p.VerificationStatus == entities.VerificationUnverified
	})).Return(nil)

	profile, err := f.usecase.Create(context.Background(), userID, &entities.CreateProfileInput{
		Slug:        "  Acme-Inc  ",
		DisplayName: "Acme Inc",
	})
	require.NoError(t, err)
	require.Equal(t, "acme-inc", profile.Slug)
	f.profileRepo.AssertExpectations(t)
}

func TestProfileUsecase_CreateRejectsBadSlug(t *testing.T) {
	f := newProfileFixture()

	for _, slug := range []string{"-leading", "trailing-", "has space", "Üñïçøde", ""} {
		_, err := f.usecase.Create(context.Background(), uuid.New(), &entities.CreateProfileInput{
			Slug:        slug,
			DisplayName: "Acme",
		})
		require.Error(t, err, "slug %q", slug)
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}

func TestProfileUsecase_CreateOneProfilePerUser(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	existing := testProfile(userID)

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(existing, nil)

	_, err := f.usecase.Create(context.Background(), userID, &entities.CreateProfileInput{
		Slug:        "second",
		DisplayName: "Second",
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	f.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestProfileUsecase_CreateSlugTaken(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.profileRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrAlreadyExists)

	_, err := f.usecase.Create(context.Background(), userID, &entities.CreateProfileInput{
		Slug:        "acme",
		DisplayName: "Acme",
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "slug is already taken", appErr.Message)
}

func TestProfileUsecase_UpdatePartialFields(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	profile := testProfile(userID)
	profile.LegalName = "Acme Incorporated"

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	f.profileRepo.On("Update", mock.Anything, profile).Return(nil)

	newName := "Acme Corp"
	got, err := f.usecase.Update(context.Background(), userID, &entities.UpdateProfileInput{
		DisplayName: &newName,
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.DisplayName)
	// Untouched fields survive a partial update.
	require.Equal(t, "Acme Incorporated", got.LegalName)
	require.Equal(t, f.now, got.UpdatedAt)
}

func TestProfileUsecase_UnpublishStartsRetentionClock(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	profile := testProfile(userID)

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	f.profileRepo.On("Update", mock.Anything, profile).Return(nil)

	visibility := string(entities.VisibilityUnpublished)
	got, err := f.usecase.Update(context.Background(), userID, &entities.UpdateProfileInput{
		Visibility: &visibility,
	})
	require.NoError(t, err)
	require.Equal(t, entities.VisibilityUnpublished, got.Visibility)
	require.Equal(t, string(entities.UnpublishReasonUserRequest), got.UnpublishReason.String)
	require.Equal(t, f.now.Add(retentionGrace), got.RetentionUntil.Time)
}

func TestProfileUsecase_RepublishClearsRetentionClock(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	profile := testProfile(userID)
	profile.Visibility = entities.VisibilityUnpublished
	profile.UnpublishReason = null.StringFrom(string(entities.UnpublishReasonUserRequest))
	profile.RetentionUntil = null.TimeFrom(f.now.Add(retentionGrace))

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	f.profileRepo.On("Update", mock.Anything, profile).Return(nil)

	visibility := string(entities.VisibilityPublished)
	got, err := f.usecase.Update(context.Background(), userID, &entities.UpdateProfileInput{
		Visibility: &visibility,
	})
	require.NoError(t, err)
	require.Equal(t, entities.VisibilityPublished, got.Visibility)
	require.False(t, got.UnpublishReason.Valid)
	require.False(t, got.RetentionUntil.Valid)
}

func TestProfileUsecase_UpdateRejectsDeletedTarget(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	profile := testProfile(userID)
	profile.Visibility = entities.VisibilityDeleted

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)

	name := "x"
	_, err := f.usecase.Update(context.Background(), userID, &entities.UpdateProfileInput{DisplayName: &name})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileUsecase_UpdateRejectsDeletedVisibility(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	profile := testProfile(userID)

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)

	// DELETED is owned by the retention sweep, never by this endpoint.
	visibility := string(entities.VisibilityDeleted)
	_, err := f.usecase.Update(context.Background(), userID, &entities.UpdateProfileInput{
		Visibility: &visibility,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	f.profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileUsecase_MarkSubscriptionLapsed(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	profile := testProfile(userID)

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	f.profileRepo.On("Update", mock.Anything, profile).Return(nil)

	err := f.usecase.MarkSubscriptionLapsed(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, entities.PlanStatusPastDue, profile.PlanStatus)
	require.Equal(t, entities.VisibilityUnpublished, profile.Visibility)
	require.Equal(t, string(entities.UnpublishReasonSubscriptionLapsed), profile.UnpublishReason.String)
	require.Equal(t, f.now.Add(retentionGrace), profile.RetentionUntil.Time)
}

func TestProfileUsecase_MarkSubscriptionLapsedIdempotent(t *testing.T) {
	f := newProfileFixture()
	userID := uuid.New()
	profile := testProfile(userID)
	originalDeadline := f.now.Add(-10 * 24 * time.Hour)
	profile.Visibility = entities.VisibilityUnpublished
	profile.UnpublishReason = null.StringFrom(string(entities.UnpublishReasonSubscriptionLapsed))
	profile.RetentionUntil = null.TimeFrom(originalDeadline)

	f.profileRepo.On("GetByUserID", mock.Anything, userID).Return(profile, nil)

	// Repeat notifications must not push the retention deadline out.
	err := f.usecase.MarkSubscriptionLapsed(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, originalDeadline, profile.RetentionUntil.Time)
	f.profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
