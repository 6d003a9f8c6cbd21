// Package generator wraps the external map-poster script behind a small
// capability interface so the HTTP layer and the queue workers can be tested
// without spawning real processes.
package generator

import (
	"context"

	"github.com/phambaophuc/map-poster-api/internal/models"
)

// Artifact is a successfully produced poster file.
type Artifact struct {
	// Path of the PNG inside the shared output directory.
	Path string
	// Stdout captured from the script run, kept for diagnostics.
	Stdout string
}

// Generator renders one poster per call. Implementations must return the
// typed errors from errors.go so callers can map them to HTTP statuses.
type Generator interface {
	Generate(ctx context.Context, req *models.PosterRequest, width, height float64) (*Artifact, error)
}
