package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/internal/interfaces/http/middleware"
	"aeobro.backend/internal/interfaces/http/response"
	"aeobro.backend/internal/usecases"
)

// VerificationService is the verification surface the handler depends on
type VerificationService interface {
	StartDomainVerification(ctx context.Context, userID uuid.UUID, domain string) (*entities.DomainVerificationInstructions, error)
	CheckDomainVerification(ctx context.Context, userID uuid.UUID, domain string) (*usecases.CheckResult, error)
	SendDomainProofEmail(ctx context.Context, userID uuid.UUID, userEmail, domain string) error
	ConfirmDomainProofEmail(ctx context.Context, token string) error
	StartPlatformVerification(ctx context.Context, userID uuid.UUID, platform string) (*entities.BioCode, error)
	VerifyPlatformOAuth(ctx context.Context, userID uuid.UUID, input *entities.OAuthVerificationInput) (*entities.PlatformAccount, error)
	CheckBioVerification(ctx context.Context, userID uuid.UUID, input *entities.BioVerificationInput) (*usecases.CheckResult, error)
	ListPlatformAccounts(ctx context.Context, userID uuid.UUID) ([]*entities.PlatformAccount, error)
	DisconnectPlatformAccount(ctx context.Context, userID, accountID uuid.UUID) error
}

// VerificationHandler handles identity verification endpoints
type VerificationHandler struct {
	verificationUsecase VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// StartDomain begins DNS verification for a domain
// POST /api/v1/verification/domain/start
func (h *VerificationHandler) StartDomain(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.StartDomainVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	instructions, err := h.verificationUsecase.StartDomainVerification(c.Request.Context(), userID, input.Domain)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, instructions)
}

// CheckDomain probes DNS for the verification record
// POST /api/v1/verification/domain/check
func (h *VerificationHandler) CheckDomain(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Domain string `json:"domain"`
	}
	// Body is optional; defaults to the pending claimed domain
	_ = c.ShouldBindJSON(&input)

	result, err := h.verificationUsecase.CheckDomainVerification(c.Request.Context(), userID, input.Domain)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// SendDomainEmail issues the secondary email proof for a claim
// POST /api/v1/verification/domain/email/send
func (h *VerificationHandler) SendDomainEmail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}
	userEmail, _ := middleware.GetUserEmail(c)

	var input struct {
		Domain string `json:"domain" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.verificationUsecase.SendDomainProofEmail(c.Request.Context(), userID, userEmail, input.Domain); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Confirmation email sent",
	})
}

// ConfirmDomainEmail completes the email proof leg
// POST /api/v1/verification/domain/email/confirm
func (h *VerificationHandler) ConfirmDomainEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var input struct {
			Token string `json:"token"`
		}
		_ = c.ShouldBindJSON(&input)
		token = input.Token
	}
	if token == "" {
		response.Error(c, domainerrors.BadRequest("token is required"))
		return
	}

	if err := h.verificationUsecase.ConfirmDomainProofEmail(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email proof confirmed",
	})
}

// StartPlatform mints or returns the active code-in-bio marker
// POST /api/v1/verification/platform/start
func (h *VerificationHandler) StartPlatform(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Platform string `json:"platform" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	code, err := h.verificationUsecase.StartPlatformVerification(c.Request.Context(), userID, input.Platform)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"platform":  code.Platform,
		"code":      code.Code,
		"expiresAt": code.ExpiresAt,
	})
}

// VerifyOAuth runs the OAuth proof branch
// POST /api/v1/verification/platform/oauth
func (h *VerificationHandler) VerifyOAuth(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.OAuthVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	account, err := h.verificationUsecase.VerifyPlatformOAuth(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, account)
}

// VerifyBio runs the code-in-bio proof branch
// POST /api/v1/verification/platform/bio
func (h *VerificationHandler) VerifyBio(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.BioVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.verificationUsecase.CheckBioVerification(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListPlatformAccounts lists the caller's linked platform accounts
// GET /api/v1/platform-accounts
func (h *VerificationHandler) ListPlatformAccounts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	accounts, err := h.verificationUsecase.ListPlatformAccounts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accounts": accounts,
	})
}

// DisconnectPlatformAccount unlinks a platform account
// DELETE /api/v1/platform-accounts/:id
func (h *VerificationHandler) DisconnectPlatformAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid account id"))
		return
	}

	if err := h.verificationUsecase.DisconnectPlatformAccount(c.Request.Context(), userID, accountID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Platform account disconnected",
	})
}
