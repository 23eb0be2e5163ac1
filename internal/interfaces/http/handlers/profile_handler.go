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
)

// ProfileService is the profile surface the handler depends on
type ProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateProfileInput) (*entities.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error)
}

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileUsecase ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

// Create handles profile creation
// POST /api/v1/profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, profile)
}

// GetMine returns the caller's profile
// GET /api/v1/profiles/me
func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.profileUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Update applies a partial update to the caller's profile
// PUT /api/v1/profiles/me
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.Update(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
