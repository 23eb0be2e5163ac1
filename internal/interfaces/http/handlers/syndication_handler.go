package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"aeobro.backend/internal/domain/entities"
	"aeobro.backend/internal/interfaces/http/response"
)

// SyndicationService is the public feed surface the handler depends on
type SyndicationService interface {
	GetBySlug(ctx context.Context, slug string) (*entities.Profile, error)
}

// SyndicationHandler serves the public machine-readable profile feed
type SyndicationHandler struct {
	syndicationUsecase SyndicationService
}

// NewSyndicationHandler creates a new syndication handler
func NewSyndicationHandler(syndicationUsecase SyndicationService) *SyndicationHandler {
	return &SyndicationHandler{
		syndicationUsecase: syndicationUsecase,
	}
}

// GetBySlug returns the public profile for a slug
// GET /api/v1/syndication/:slug
func (h *SyndicationHandler) GetBySlug(c *gin.Context) {
	profile, err := h.syndicationUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	response.Success(c, http.StatusOK, profile)
}
