package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/models"
	"github.com/phambaophuc/map-poster-api/internal/services/catalog"
	"github.com/phambaophuc/map-poster-api/internal/services/generator"
)

// === REQUEST PARSING ===

func (h *PosterHandler) bindRequest(c *gin.Context) (*models.PosterRequest, bool) {
	var req models.PosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return nil, false
	}
	return &req, true
}

// === RESPONSE HANDLING ===

func (h *PosterHandler) respondError(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

// respondGenerateError maps pipeline errors onto the API contract: catalog
// faults are 400, timeouts 504, everything else 500. Both generate endpoints
// share this, so identical input fails identically on either.
func (h *PosterHandler) respondGenerateError(c *gin.Context, err error) {
	var validationErr *catalog.ValidationError
	if errors.As(err, &validationErr) {
		h.respondError(c, http.StatusBadRequest, validationErr.Detail)
		return
	}

	if errors.Is(err, generator.ErrTimeout) {
		h.respondError(c, http.StatusGatewayTimeout, generator.ErrTimeout.Error())
		return
	}

	var genErr *generator.GenerationError
	if errors.As(err, &genErr) {
		h.respondError(c, http.StatusInternalServerError, genErr.Error())
		return
	}

	var notFoundErr *generator.OutputNotFoundError
	if errors.As(err, &notFoundErr) {
		h.respondError(c, http.StatusInternalServerError, notFoundErr.Error())
		return
	}

	h.logger.Error("Unexpected generation error", zap.Error(err))
	h.respondError(c, http.StatusInternalServerError, "Unexpected error: "+err.Error())
}
