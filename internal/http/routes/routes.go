package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/http/handlers"
	"github.com/phambaophuc/map-poster-api/internal/http/middleware"
)

type Router struct {
	posterHandler *handlers.PosterHandler
	logger        *zap.Logger
}

func NewRouter(
	posterHandler *handlers.PosterHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		posterHandler: posterHandler,
		logger:        logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Paths are part of the public contract, registered at the root.
	router.GET("/", r.posterHandler.Root)
	router.GET("/health", r.posterHandler.HealthCheck)
	router.GET("/themes", r.posterHandler.ListThemes)
	router.GET("/sizes", r.posterHandler.ListSizes)

	router.POST("/generate", r.posterHandler.GeneratePoster)
	router.POST("/generate/base64", r.posterHandler.GeneratePosterBase64)
	router.POST("/generate/async", r.posterHandler.GeneratePosterAsync)
	router.GET("/jobs/:id", r.posterHandler.GetJob)

	return router
}
