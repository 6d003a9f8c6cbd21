// Package poster holds the one pipeline both generate endpoints and the
// queue workers share: validate, resolve dimensions, invoke the script,
// read the artifact, downscale on request. The endpoints differ only in how
// they encode the result.
package poster

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/models"
	"github.com/phambaophuc/map-poster-api/internal/services/catalog"
	"github.com/phambaophuc/map-poster-api/internal/services/generator"
	"github.com/phambaophuc/map-poster-api/internal/services/preview"
	"github.com/phambaophuc/map-poster-api/pkg/utils"
)

type Service struct {
	generator generator.Generator
	storage   Store
	logger    *zap.Logger
}

// Store is the slice of the storage service the pipeline needs. Nil-able:
// without it every request invokes the script.
type Store interface {
	CacheEnabled() bool
	CacheKey(req *models.PosterRequest, width, height float64) string
	GetPoster(ctx context.Context, cacheKey string) ([]byte, error)
	SetPoster(ctx context.Context, cacheKey string, data []byte) error
}

type Output struct {
	Data      []byte
	Filename  string
	FromCache bool
}

func NewService(gen generator.Generator, store Store, logger *zap.Logger) *Service {
	return &Service{
		generator: gen,
		storage:   store,
		logger:    logger,
	}
}

// Generate runs the pipeline for one request. Errors are the catalog and
// generator types; callers map them to HTTP statuses.
func (s *Service) Generate(ctx context.Context, req *models.PosterRequest) (*Output, error) {
	req.ApplyDefaults()

	if err := catalog.ValidateTheme(req.Theme); err != nil {
		return nil, err
	}
	width, height, err := catalog.ResolveSize(req)
	if err != nil {
		return nil, err
	}

	var cacheKey string
	if s.storage != nil && s.storage.CacheEnabled() {
		cacheKey = s.storage.CacheKey(req, width, height)
		if data, err := s.storage.GetPoster(ctx, cacheKey); err == nil && data != nil {
			s.logger.Info("Poster cache hit",
				zap.String("city", req.City),
				zap.String("theme", req.Theme))
			return &Output{
				Data:      data,
				Filename:  utils.PosterFilename(req.City, req.Country, req.Theme),
				FromCache: true,
			}, nil
		}
	}

	artifact, err := s.generator.Generate(ctx, req, width, height)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(artifact.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read generated poster: %w", err)
	}

	if req.PreviewMaxPx > 0 {
		data, err = preview.Downscale(data, req.PreviewMaxPx)
		if err != nil {
			return nil, err
		}
	}

	if cacheKey != "" {
		if err := s.storage.SetPoster(ctx, cacheKey, data); err != nil {
			s.logger.Warn("Failed to cache poster", zap.Error(err))
		}
	}

	return &Output{
		Data:     data,
		Filename: utils.PosterFilename(req.City, req.Country, req.Theme),
	}, nil
}
