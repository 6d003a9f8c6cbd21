package storage

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/phambaophuc/map-poster-api/internal/models"
)

const cacheKeyPrefix = "poster_cache:"

// CacheKey hashes every render-affecting request field plus the resolved
// dimensions, so two requests share an entry only when the script would be
// invoked identically.
func (s *Service) CacheKey(req *models.PosterRequest, width, height float64) string {
	parts := []string{
		req.City,
		req.Country,
		req.Theme,
		fmt.Sprintf("%g_%g", width, height),
		fmt.Sprintf("dist_%d", *req.Distance),
		req.DisplayCity,
		req.DisplayCountry,
		req.FontFamily,
		fmt.Sprintf("preview_%d", req.PreviewMaxPx),
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%s%x", cacheKeyPrefix, hash)
}

// GetPoster returns cached PNG bytes, or (nil, nil) on a miss.
func (s *Service) GetPoster(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *Service) SetPoster(ctx context.Context, cacheKey string, data []byte) error {
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}
