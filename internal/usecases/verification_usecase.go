package usecases

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/internal/domain/repositories"
	"aeobro.backend/internal/infrastructure/metrics"
	"aeobro.backend/pkg/crypto"
	"aeobro.backend/pkg/logger"
)

// DomainChecker probes DNS for the expected verification record.
// A false result covers both "record absent" and any DNS-layer fault.
type DomainChecker interface {
	CheckDomain(ctx context.Context, domain, token string) bool
}

// IdentityResolver resolves a provider access token to a canonical
// external identity.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, provider, accessToken string) (*entities.PlatformIdentity, error)
}

// BioFetcher fetches a public bio page and tests for a marker
type BioFetcher interface {
	ContainsMarker(ctx context.Context, profileURL, marker string) (bool, error)
}

// Mailer delivers the optional secondary email proof for domain claims
type Mailer interface {
	SendDomainProof(ctx context.Context, to, domain, token string) error
}

// BioCodeCache is a TTL cache in front of the durable bio code rows
type BioCodeCache interface {
	Get(ctx context.Context, userID uuid.UUID, platform string) (string, error)
	Set(ctx context.Context, userID uuid.UUID, platform, code string, ttl time.Duration) error
	Del(ctx context.Context, userID uuid.UUID, platform string) error
}

// VerificationSettings are the tunables of the verification flows
type VerificationSettings struct {
	BioCodeTTL               time.Duration
	BioCodeMaxTTL            time.Duration
	DomainEmailProofRequired bool
}

// CheckResult is the outcome of a proof check. Verified=false with a
// nil error is the soft "not observable yet" outcome: expected,
// retryable, and not an error.
type CheckResult struct {
	Verified bool                       `json:"verified"`
	Status   entities.VerificationStatus `json:"status"`
	Message  string                     `json:"message,omitempty"`
}

// VerificationUsecase is the verification state machine. It is the only
// component that writes a profile's verificationStatus, and every
// status-mutating transition spans the proof row and the profile row in
// one transaction.
type VerificationUsecase struct {
	profileRepo repositories.ProfileRepository
	claimRepo   repositories.DomainClaimRepository
	accountRepo repositories.PlatformAccountRepository
	bioCodeRepo repositories.BioCodeRepository
	changeLog   repositories.ChangeLogRepository
	uow         repositories.UnitOfWork
	checker     DomainChecker
	resolver    IdentityResolver
	bioFetcher  BioFetcher
	bioCache    BioCodeCache
	mailer      Mailer
	metrics     *metrics.Metrics
	settings    VerificationSettings
	now         func() time.Time
}

// NewVerificationUsecase creates the verification state machine
func NewVerificationUsecase(
	profileRepo repositories.ProfileRepository,
	claimRepo repositories.DomainClaimRepository,
	accountRepo repositories.PlatformAccountRepository,
	bioCodeRepo repositories.BioCodeRepository,
	changeLog repositories.ChangeLogRepository,
	uow repositories.UnitOfWork,
	checker DomainChecker,
	resolver IdentityResolver,
	bioFetcher BioFetcher,
	bioCache BioCodeCache,
	mailer Mailer,
	m *metrics.Metrics,
	settings VerificationSettings,
) *VerificationUsecase {
	if settings.BioCodeTTL <= 0 {
		settings.BioCodeTTL = 24 * time.Hour
	}
	if settings.BioCodeMaxTTL <= 0 {
		settings.BioCodeMaxTTL = 72 * time.Hour
	}
	if settings.BioCodeTTL > settings.BioCodeMaxTTL {
		settings.BioCodeTTL = settings.BioCodeMaxTTL
	}
	return &VerificationUsecase{
		profileRepo: profileRepo,
		claimRepo:   claimRepo,
		accountRepo: accountRepo,
		bioCodeRepo: bioCodeRepo,
		changeLog:   changeLog,
		uow:         uow,
		checker:     checker,
		resolver:    resolver,
		bioFetcher:  bioFetcher,
		bioCache:    bioCache,
		mailer:      mailer,
		metrics:     m,
		settings:    settings,
		now:         time.Now,
	}
}

// RecomputeStatus derives the profile-level status from proof rows.
// Domain proof takes display precedence over platform proof; PARTIAL
// claims do not count. This is the single source of truth the cached
// verificationStatus column must always agree with.
func RecomputeStatus(claims []*entities.DomainClaim, accounts []*entities.PlatformAccount) entities.VerificationStatus {
	for _, c := range claims {
		if c.Status == entities.DomainClaimVerified {
			return entities.VerificationDomainVerified
		}
	}
	for _, a := range accounts {
		if a.Status == entities.PlatformAccountVerified {
			return entities.VerificationPlatformVerified
		}
	}
	return entities.VerificationUnverified
}

// StartDomainVerification creates or refreshes a DNS claim for the
// caller. The token always rotates: restarting supersedes the previous
// challenge, so checks against the old token must fail from here on.
func (u *VerificationUsecase) StartDomainVerification(ctx context.Context, userID uuid.UUID, rawDomain string) (*entities.DomainVerificationInstructions, error) {
	domain, err := NormalizeDomain(rawDomain)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := u.claimRepo.GetByDomain(ctx, domain)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.UserID != userID {
		return nil, domainerrors.ErrDomainClaimed
	}

	token, err := crypto.MintVerifyToken()
	if err != nil {
		return nil, err
	}

	now := u.now()
	var claimID uuid.UUID
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if existing == nil {
			claim := &entities.DomainClaim{
				ID:        uuid.New(),
				Domain:    domain,
				UserID:    userID,
				TxtToken:  token,
				Status:    entities.DomainClaimPending,
				CreatedAt: now,
				UpdatedAt: now,
			}
			claimID = claim.ID
			if err := u.claimRepo.Create(txCtx, claim); err != nil {
				// Unique index on domain resolves concurrent claim
				// races; the loser surfaces the conflict.
				if errors.Is(err, domainerrors.ErrAlreadyExists) {
					return domainerrors.ErrDomainClaimed
				}
				return err
			}
		} else {
			claimID = existing.ID
			existing.TxtToken = token
			existing.DNSVerified = false
			existing.Status = entities.DomainClaimPending
			existing.VerifiedAt = null.Time{}
			if err := u.claimRepo.Update(txCtx, existing); err != nil {
				return err
			}
		}

		profile.VerifyMethod = null.StringFrom(string(entities.VerifyMethodDNS))
		profile.VerifyToken = null.StringFrom(token)
		profile.VerifyDomain = null.StringFrom(domain)
		return u.profileRepo.UpdateVerification(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	u.audit(ctx, userID, profile.ID, "DomainClaim", claimID, entities.ChangeLogUpdate, "txtToken", "", "rotated")

	return &entities.DomainVerificationInstructions{
		RecordHost:         "_aeobro-verify." + domain,
		RecordType:         "TXT",
		RecordValue:        crypto.TXTRecordValue(token),
		LegacyAlternatives: crypto.LegacyTXTRecordValues(token),
	}, nil
}

// CheckDomainVerification runs the DNS probe for the caller's claim.
// A missing record is the expected steady state while DNS propagates,
// so it reports a soft result instead of an error.
func (u *VerificationUsecase) CheckDomainVerification(ctx context.Context, userID uuid.UUID, rawDomain string) (*CheckResult, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	domain := rawDomain
	if domain == "" {
		domain = profile.VerifyDomain.String
	}
	domain, err = NormalizeDomain(domain)
	if err != nil {
		return nil, err
	}

	claim, err := u.claimRepo.GetByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if claim.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	if u.metrics != nil {
		u.metrics.DomainChecksRun.Inc()
	}

	if !u.checker.CheckDomain(ctx, claim.Domain, claim.TxtToken) {
		return &CheckResult{
			Verified: false,
			Status:   profile.VerificationStatus,
			Message:  "verification record not found yet; DNS changes can take a while to propagate",
		}, nil
	}

	alreadyVerified := claim.Status == entities.DomainClaimVerified
	now := u.now()

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		claim.DNSVerified = true
		if u.settings.DomainEmailProofRequired && !claim.EmailVerified {
			claim.Status = entities.DomainClaimPartial
		} else {
			claim.Status = entities.DomainClaimVerified
			if !claim.VerifiedAt.Valid {
				claim.VerifiedAt = null.TimeFrom(now)
			}
		}
		if err := u.claimRepo.Update(txCtx, claim); err != nil {
			return err
		}

		profile.VerifyCheckedAt = null.TimeFrom(now)
		if claim.Status == entities.DomainClaimVerified {
			profile.VerificationStatus = entities.VerificationDomainVerified
			if !profile.DomainVerifiedAt.Valid {
				profile.DomainVerifiedAt = null.TimeFrom(now)
			}
		}
		return u.profileRepo.UpdateVerification(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	if claim.Status == entities.DomainClaimVerified && !alreadyVerified {
		if u.metrics != nil {
			u.metrics.DomainsVerified.Inc()
		}
		u.audit(ctx, userID, profile.ID, "DomainClaim", claim.ID, entities.ChangeLogUpdate, "status",
			string(entities.DomainClaimPending), string(entities.DomainClaimVerified))
	}

	message := "domain verified"
	if claim.Status == entities.DomainClaimPartial {
		message = "DNS record confirmed; email confirmation still required"
	}

	return &CheckResult{
		Verified: claim.Status == entities.DomainClaimVerified,
		Status:   profile.VerificationStatus,
		Message:  message,
	}, nil
}

// SendDomainProofEmail issues the optional secondary email proof.
// Delivery failure is logged and otherwise ignored; the token stays
// valid so the mail can be re-sent.
func (u *VerificationUsecase) SendDomainProofEmail(ctx context.Context, userID uuid.UUID, userEmail, rawDomain string) error {
	domain, err := NormalizeDomain(rawDomain)
	if err != nil {
		return err
	}

	claim, err := u.claimRepo.GetByDomain(ctx, domain)
	if err != nil {
		return err
	}
	if claim.UserID != userID {
		return domainerrors.ErrForbidden
	}

	token, err := crypto.MintVerifyToken()
	if err != nil {
		return err
	}

	claim.EmailIssued = true
	claim.EmailToken = null.StringFrom(token)
	if err := u.claimRepo.Update(ctx, claim); err != nil {
		return err
	}

	if err := u.mailer.SendDomainProof(ctx, userEmail, domain, token); err != nil {
		logger.Warn(ctx, "domain proof email delivery failed",
			zap.String("domain", domain), zap.Error(err))
	}
	return nil
}

// ConfirmDomainProofEmail completes the email proof leg. When the DNS
// leg already passed, the claim is promoted and the profile follows in
// the same transaction.
func (u *VerificationUsecase) ConfirmDomainProofEmail(ctx context.Context, token string) error {
	claim, err := u.claimRepo.GetByEmailToken(ctx, token)
	if err != nil {
		return err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, claim.UserID)
	if err != nil {
		return err
	}

	now := u.now()
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		claim.EmailVerified = true
		claim.EmailToken = null.String{}
		if claim.DNSVerified {
			claim.Status = entities.DomainClaimVerified
			if !claim.VerifiedAt.Valid {
				claim.VerifiedAt = null.TimeFrom(now)
			}
		}
		if err := u.claimRepo.Update(txCtx, claim); err != nil {
			return err
		}

		if claim.Status == entities.DomainClaimVerified {
			profile.VerificationStatus = entities.VerificationDomainVerified
			if !profile.DomainVerifiedAt.Valid {
				profile.DomainVerifiedAt = null.TimeFrom(now)
			}
			return u.profileRepo.UpdateVerification(txCtx, profile)
		}
		return nil
	})
}

// StartPlatformVerification mints (or reuses) the code-in-bio marker
// for a platform. An unexpired code is returned as-is so a marker the
// user already pasted is not invalidated.
func (u *VerificationUsecase) StartPlatformVerification(ctx context.Context, userID uuid.UUID, platform string) (*entities.BioCode, error) {
	if !BioPlatformAllowed(platform) {
		return nil, domainerrors.ErrUnsupportedProvider
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := u.bioCodeRepo.GetActive(ctx, userID, platform)
	if err == nil && !existing.Expired(u.now()) {
		return existing, nil
	}
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	token, err := crypto.MintVerifyToken()
	if err != nil {
		return nil, err
	}

	now := u.now()
	code := &entities.BioCode{
		ID:        uuid.New(),
		UserID:    userID,
		Platform:  platform,
		Code:      crypto.BioMarker(token),
		Status:    entities.BioCodeActive,
		ExpiresAt: now.Add(u.settings.BioCodeTTL),
		CreatedAt: now,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.bioCodeRepo.Create(txCtx, code); err != nil {
			return err
		}
		profile.VerifyMethod = null.StringFrom(string(entities.VerifyMethodPlatform))
		profile.VerifyMarker = null.StringFrom(code.Code)
		return u.profileRepo.UpdateVerification(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	if u.bioCache != nil {
		if err := u.bioCache.Set(ctx, userID, platform, code.Code, u.settings.BioCodeTTL); err != nil {
			logger.Debug(ctx, "bio code cache write failed", zap.Error(err))
		}
	}

	u.audit(ctx, userID, profile.ID, "BioCode", code.ID, entities.ChangeLogCreate, "code", "", "minted")
	return code, nil
}

// VerifyPlatformOAuth runs the OAuth branch: resolve the token to a
// canonical identity, upsert the account row and promote the profile.
// Resolution faults indicate genuine mismatch (wrong account, missing
// scope) and propagate as failures, unlike the DNS and bio branches.
func (u *VerificationUsecase) VerifyPlatformOAuth(ctx context.Context, userID uuid.UUID, input *entities.OAuthVerificationInput) (*entities.PlatformAccount, error) {
	if !ProviderContextAllowed(input.Provider, input.Context) {
		return nil, domainerrors.ErrUnsupportedProvider
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	linked, err := u.accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(linked) >= PlanLimitsFor(profile.Plan).MaxPlatformAccounts {
		if !hasProviderAccount(linked, input.Provider) {
			return nil, domainerrors.Forbidden("platform account limit reached for plan")
		}
	}

	identity, err := u.resolver.ResolveIdentity(ctx, input.Provider, input.AccessToken)
	if err != nil {
		return nil, err
	}

	existing, err := u.accountRepo.GetByProviderExternalID(ctx, input.Provider, identity.ExternalID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.UserID != userID {
		return nil, domainerrors.ErrAccountClaimed
	}

	now := u.now()
	account := &entities.PlatformAccount{
		ID:         uuid.New(),
		UserID:     userID,
		ProfileID:  profile.ID,
		Provider:   input.Provider,
		ExternalID: identity.ExternalID,
		Handle:     identity.Handle,
		URL:        identity.URL,
		Status:     entities.PlatformAccountVerified,
		Method:     entities.PlatformMethodOAuth,
		VerifiedAt: null.TimeFrom(now),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if identity.PlatformContext != "" {
		account.PlatformContext = null.StringFrom(identity.PlatformContext)
	} else if input.Context != "" {
		account.PlatformContext = null.StringFrom(input.Context)
	}
	if input.Scopes != "" {
		account.Scopes = null.StringFrom(input.Scopes)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.Upsert(txCtx, account); err != nil {
			return err
		}

		profile.VerificationStatus = entities.VerificationPlatformVerified
		profile.PlatformVerifiedAt = null.TimeFrom(now)
		profile.VerifyCheckedAt = null.TimeFrom(now)
		if profile.VerifiedPlatforms == nil {
			profile.VerifiedPlatforms = map[string]bool{}
		}
		// Additive: reconnecting one provider never clears the others.
		profile.VerifiedPlatforms[input.Provider] = true
		return u.profileRepo.UpdateVerification(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.PlatformsVerified.WithLabelValues(input.Provider).Inc()
	}
	u.audit(ctx, userID, profile.ID, "PlatformAccount", account.ID, entities.ChangeLogUpdate, "status",
		string(entities.PlatformAccountPending), string(entities.PlatformAccountVerified))

	return account, nil
}

// CheckBioVerification fetches the claimed public bio page and tests
// for the active marker. Same soft-fail semantics as DNS.
func (u *VerificationUsecase) CheckBioVerification(ctx context.Context, userID uuid.UUID, input *entities.BioVerificationInput) (*CheckResult, error) {
	if !BioPlatformAllowed(input.Platform) {
		return nil, domainerrors.ErrUnsupportedProvider
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	code, err := u.activeBioCode(ctx, userID, input.Platform)
	if err != nil {
		return nil, err
	}

	profileURL := input.ProfileURL
	if profileURL == "" {
		profileURL = code.ProfileURL
	}
	if profileURL == "" {
		return nil, domainerrors.BadRequest("profileUrl is required")
	}

	if u.metrics != nil {
		u.metrics.BioChecksRun.Inc()
	}

	found, err := u.bioFetcher.ContainsMarker(ctx, profileURL, code.Code)
	if err != nil {
		// Upstream faults are propagation-tolerant here, exactly like DNS.
		logger.Warn(ctx, "bio page fetch failed",
			zap.String("platform", input.Platform), zap.Error(err))
		found = false
	}
	if !found {
		return &CheckResult{
			Verified: false,
			Status:   profile.VerificationStatus,
			Message:  "marker not found in bio yet; make sure the code is saved and the profile is public",
		}, nil
	}

	now := u.now()
	account := &entities.PlatformAccount{
		ID:         uuid.New(),
		UserID:     userID,
		ProfileID:  profile.ID,
		Provider:   input.Platform,
		ExternalID: bioExternalID(profileURL),
		Handle:     handleFromURL(profileURL),
		URL:        profileURL,
		Status:     entities.PlatformAccountVerified,
		Method:     entities.PlatformMethodBioCode,
		VerifiedAt: null.TimeFrom(now),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.Upsert(txCtx, account); err != nil {
			return err
		}
		if err := u.bioCodeRepo.UpdateStatus(txCtx, code.ID, entities.BioCodeVerified); err != nil {
			return err
		}

		profile.VerificationStatus = entities.VerificationPlatformVerified
		profile.PlatformVerifiedAt = null.TimeFrom(now)
		profile.VerifyCheckedAt = null.TimeFrom(now)
		if profile.VerifiedPlatforms == nil {
			profile.VerifiedPlatforms = map[string]bool{}
		}
		profile.VerifiedPlatforms[input.Platform] = true
		return u.profileRepo.UpdateVerification(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	if u.bioCache != nil {
		_ = u.bioCache.Del(ctx, userID, input.Platform)
	}
	if u.metrics != nil {
		u.metrics.PlatformsVerified.WithLabelValues(input.Platform).Inc()
	}
	u.audit(ctx, userID, profile.ID, "PlatformAccount", account.ID, entities.ChangeLogUpdate, "status",
		string(entities.PlatformAccountPending), string(entities.PlatformAccountVerified))

	return &CheckResult{
		Verified: true,
		Status:   profile.VerificationStatus,
		Message:  "platform verified via bio code",
	}, nil
}

// ListPlatformAccounts lists the caller's linked platform accounts
func (u *VerificationUsecase) ListPlatformAccounts(ctx context.Context, userID uuid.UUID) ([]*entities.PlatformAccount, error) {
	return u.accountRepo.ListByUserID(ctx, userID)
}

// DisconnectPlatformAccount removes a linked account. The profile's
// status is re-derived from the proofs that remain, never assumed: the
// demotion to UNVERIFIED happens only when the last verified proof of
// any kind is gone.
func (u *VerificationUsecase) DisconnectPlatformAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.UserID != userID {
		return domainerrors.ErrForbidden
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	demoted := false
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.Delete(txCtx, accountID); err != nil {
			return err
		}

		remaining, err := u.accountRepo.ListVerifiedByProfileID(txCtx, profile.ID)
		if err != nil {
			return err
		}
		claims, err := u.claimRepo.ListVerifiedByUserID(txCtx, userID)
		if err != nil {
			return err
		}

		previous := profile.VerificationStatus
		profile.VerificationStatus = RecomputeStatus(claims, remaining)
		demoted = previous != entities.VerificationUnverified &&
			profile.VerificationStatus == entities.VerificationUnverified

		if !providerStillVerified(remaining, account.Provider) {
			delete(profile.VerifiedPlatforms, account.Provider)
		}
		return u.profileRepo.UpdateVerification(txCtx, profile)
	})
	if err != nil {
		return err
	}

	if demoted && u.metrics != nil {
		u.metrics.ProfilesDemoted.Inc()
	}
	u.audit(ctx, userID, profile.ID, "PlatformAccount", accountID, entities.ChangeLogDelete, "status",
		string(account.Status), "")
	return nil
}

func (u *VerificationUsecase) activeBioCode(ctx context.Context, userID uuid.UUID, platform string) (*entities.BioCode, error) {
	if u.bioCache != nil {
		if cached, err := u.bioCache.Get(ctx, userID, platform); err == nil && cached != "" {
			// Cache only stores the marker string; the durable row is
			// still the record of truth for ID and expiry.
			code, err := u.bioCodeRepo.GetActive(ctx, userID, platform)
			if err == nil && code.Code == cached {
				return code, nil
			}
		}
	}
	return u.bioCodeRepo.GetActive(ctx, userID, platform)
}

// audit writes a change log entry, best-effort. Audit failures are
// logged and never fail the primary mutation.
func (u *VerificationUsecase) audit(ctx context.Context, userID, profileID uuid.UUID, kind string, entityID uuid.UUID, action entities.ChangeLogAction, field, before, after string) {
	entry := &entities.ChangeLogEntry{
		ID:         uuid.New(),
		UserID:     userID,
		ProfileID:  profileID,
		EntityKind: kind,
		EntityID:   entityID,
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
	if err := u.changeLog.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "change log write failed", zap.Error(err))
	}
}

func hasProviderAccount(accounts []*entities.PlatformAccount, provider string) bool {
	for _, a := range accounts {
		if a.Provider == provider {
			return true
		}
	}
	return false
}

func providerStillVerified(accounts []*entities.PlatformAccount, provider string) bool {
	for _, a := range accounts {
		if a.Provider == provider && a.Status == entities.PlatformAccountVerified {
			return true
		}
	}
	return false
}

// bioExternalID canonicalizes a profile URL into the provider-scoped
// identity key used by the uniqueness constraint.
func bioExternalID(profileURL string) string {
	u, err := url.Parse(profileURL)
	if err != nil || u.Host == "" {
		return "bio:" + strings.ToLower(strings.TrimSpace(profileURL))
	}
	return "bio:" + strings.ToLower(u.Host+strings.TrimRight(u.Path, "/"))
}

func handleFromURL(profileURL string) string {
	u, err := url.Parse(profileURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimPrefix(parts[len(parts)-1], "@")
}
