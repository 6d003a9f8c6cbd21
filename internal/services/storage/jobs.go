package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/phambaophuc/map-poster-api/internal/models"
)

const jobKeyPrefix = "poster_job:"

// SetJob persists the job record so pollers can read it after the worker is
// done. Records expire with the same TTL as generated artifacts in cache.
func (s *Service) SetJob(ctx context.Context, job *models.PosterJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	return s.redisClient.Set(ctx, jobKeyPrefix+job.ID, data, s.jobDuration).Err()
}

// GetJob returns the stored job record, or (nil, nil) when unknown.
func (s *Service) GetJob(ctx context.Context, jobID string) (*models.PosterJob, error) {
	data, err := s.redisClient.Get(ctx, jobKeyPrefix+jobID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("job get error: %w", err)
	}

	var job models.PosterJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}
