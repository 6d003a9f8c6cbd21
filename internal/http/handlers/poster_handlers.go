package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/config"
	"github.com/phambaophuc/map-poster-api/internal/models"
	"github.com/phambaophuc/map-poster-api/internal/services/catalog"
	"github.com/phambaophuc/map-poster-api/internal/services/poster"
	"github.com/phambaophuc/map-poster-api/internal/services/queue"
	"github.com/phambaophuc/map-poster-api/internal/services/storage"
)

const posterContentType = "image/png"

type PosterHandler struct {
	poster  *poster.Service
	storage *storage.Service
	queue   *queue.Service
	logger  *zap.Logger
	config  *config.Config
}

func NewPosterHandler(
	posterService *poster.Service,
	storageService *storage.Service,
	queueService *queue.Service,
	logger *zap.Logger,
	config *config.Config,
) *PosterHandler {
	return &PosterHandler{
		poster:  posterService,
		storage: storageService,
		queue:   queueService,
		logger:  logger,
		config:  config,
	}
}

// === MAIN API ENDPOINTS ===

// GeneratePoster returns the generated PNG as raw bytes.
func (h *PosterHandler) GeneratePoster(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	// Background context on purpose: once started, generation runs to
	// completion or timeout even if the client disconnects.
	output, err := h.poster.Generate(context.Background(), req)
	if err != nil {
		h.respondGenerateError(c, err)
		return
	}

	c.Header("X-Poster-City", req.City)
	c.Header("X-Poster-Country", req.Country)
	c.Header("X-Poster-Theme", req.Theme)
	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, posterContentType, output.Data)
}

// GeneratePosterBase64 returns the generated PNG base64-encoded in JSON.
// Useful for workflow tools that need to process the image data inline.
func (h *PosterHandler) GeneratePosterBase64(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	output, err := h.poster.Generate(context.Background(), req)
	if err != nil {
		h.respondGenerateError(c, err)
		return
	}

	resp := models.Base64Response{
		Success:     true,
		Filename:    output.Filename,
		City:        req.City,
		Country:     req.Country,
		Theme:       req.Theme,
		ImageBase64: base64.StdEncoding.EncodeToString(output.Data),
		ContentType: posterContentType,
	}

	if h.storage != nil && h.storage.UploadEnabled() {
		url, err := h.storage.Upload(c.Request.Context(), output.Data, output.Filename)
		if err != nil {
			h.logger.Warn("Failed to upload poster", zap.Error(err))
		} else {
			resp.StorageURL = url
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GeneratePosterAsync enqueues generation and answers with a pollable job id.
func (h *PosterHandler) GeneratePosterAsync(c *gin.Context) {
	if h.queue == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Async generation unavailable")
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	// Fail fast on catalog errors so the client gets a 400 here, not a
	// failed job to poll.
	req.ApplyDefaults()
	if err := catalog.ValidateTheme(req.Theme); err != nil {
		h.respondGenerateError(c, err)
		return
	}
	if _, _, err := catalog.ResolveSize(req); err != nil {
		h.respondGenerateError(c, err)
		return
	}

	job := &models.PosterJob{
		ID:        uuid.New().String(),
		Request:   *req,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	if err := h.queue.PublishJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to enqueue job", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to enqueue generation job")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": job.ID,
		"status": job.Status,
	})
}

// GetJob reports the state of an async generation job.
func (h *PosterHandler) GetJob(c *gin.Context) {
	if h.storage == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Job tracking unavailable")
		return
	}

	job, err := h.storage.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to load job", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job == nil {
		h.respondError(c, http.StatusNotFound, "Job not found")
		return
	}

	c.JSON(http.StatusOK, job)
}
