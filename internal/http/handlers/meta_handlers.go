package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phambaophuc/map-poster-api/internal/models"
	"github.com/phambaophuc/map-poster-api/internal/services/catalog"
)

// Root lists the API surface.
func (h *PosterHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Map Poster API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"/generate":        "POST - Generate a map poster",
			"/generate/base64": "POST - Generate a map poster as base64 JSON",
			"/generate/async":  "POST - Enqueue generation, poll /jobs/:id",
			"/jobs/:id":        "GET - Async job status",
			"/themes":          "GET - List available themes",
			"/sizes":           "GET - List preset sizes",
			"/health":          "GET - Health check",
		},
	})
}

// HealthCheck reports degraded iff the generator script is missing from
// disk. Side-store states ride along in "services" without affecting the
// overall status.
func (h *PosterHandler) HealthCheck(c *gin.Context) {
	_, err := os.Stat(h.config.Generator.ScriptPath)
	scriptFound := err == nil

	status := "healthy"
	if !scriptFound {
		status = "degraded"
	}

	services := map[string]string{}
	if h.storage != nil {
		services = h.storage.HealthCheck(c.Request.Context())
	}
	if h.queue != nil {
		services["rabbitmq"] = h.queue.HealthCheck()
		if stats, err := h.queue.GetQueueStats(); err == nil {
			services["queue_depth"] = fmt.Sprintf("%v messages, %v consumers",
				stats["messages"], stats["consumers"])
		}
	} else {
		services["rabbitmq"] = "not configured"
	}

	c.JSON(http.StatusOK, models.HealthCheck{
		Status:      status,
		ScriptFound: scriptFound,
		ScriptPath:  h.config.Generator.ScriptPath,
		Timestamp:   time.Now().UTC(),
		Services:    services,
	})
}

// ListThemes lists all available poster themes.
func (h *PosterHandler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":  catalog.Themes,
		"count":   len(catalog.Themes),
		"default": models.DefaultTheme,
	})
}

// ListSizes lists all preset poster sizes.
func (h *PosterHandler) ListSizes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sizes": catalog.Sizes,
		"note":  "You can also specify custom width/height in inches (max 20)",
	})
}
