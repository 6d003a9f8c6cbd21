package queue

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/models"
)

// processJob runs the shared generation pipeline for one queued request.
func (q *Service) processJob(ctx context.Context, job *models.PosterJob) (*models.PosterResult, error) {
	output, err := q.poster.Generate(ctx, &job.Request)
	if err != nil {
		return nil, err
	}

	result := &models.PosterResult{
		Filename:    output.Filename,
		City:        job.Request.City,
		Country:     job.Request.Country,
		Theme:       job.Request.Theme,
		FileSize:    int64(len(output.Data)),
		GeneratedAt: time.Now(),
	}

	if q.storage.UploadEnabled() {
		url, err := q.storage.Upload(ctx, output.Data, output.Filename)
		if err != nil {
			q.logger.Warn("Failed to upload poster",
				zap.String("job_id", job.ID),
				zap.Error(err))
		} else {
			result.StorageURL = url
		}
	}

	return result, nil
}
