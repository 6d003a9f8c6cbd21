package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload publishes a poster to Supabase Storage and returns its public URL.
func (s *Service) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if s.sbClient == nil {
		return "", fmt.Errorf("supabase storage not configured")
	}

	key := generateStorageKey(filename)

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	publicURL := s.sbClient.GetPublicUrl(s.bucket, key)
	return publicURL.SignedURL, nil
}

// generateStorageKey creates a unique storage key
func generateStorageKey(filename string) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	timestamp := time.Now().Unix()
	id := uuid.New().String()[:8]

	return fmt.Sprintf("posters/%s_%d_%s%s", name, timestamp, id, ext)
}
