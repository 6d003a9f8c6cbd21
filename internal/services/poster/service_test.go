package poster

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"go.uber.org/zap"

	"github.com/phambaophuc/map-poster-api/internal/models"
	"github.com/phambaophuc/map-poster-api/internal/services/catalog"
	"github.com/phambaophuc/map-poster-api/internal/services/generator"
)

type fakeGenerator struct {
	dir        string
	data       []byte
	err        error
	calls      int
	lastWidth  float64
	lastHeight float64
}

func (f *fakeGenerator) Generate(ctx context.Context, req *models.PosterRequest, width, height float64) (*generator.Artifact, error) {
	f.calls++
	f.lastWidth = width
	f.lastHeight = height
	if f.err != nil {
		return nil, f.err
	}
	path := filepath.Join(f.dir, "out_"+req.Theme+"_1.png")
	if err := os.WriteFile(path, f.data, 0o644); err != nil {
		return nil, err
	}
	return &generator.Artifact{Path: path}, nil
}

type fakeStore struct {
	enabled bool
	entries map[string][]byte
	sets    int
}

func (f *fakeStore) CacheEnabled() bool { return f.enabled }

func (f *fakeStore) CacheKey(req *models.PosterRequest, width, height float64) string {
	return req.City + "_" + req.Theme
}

func (f *fakeStore) GetPoster(ctx context.Context, key string) ([]byte, error) {
	return f.entries[key], nil
}

func (f *fakeStore) SetPoster(ctx context.Context, key string, data []byte) error {
	f.sets++
	f.entries[key] = data
	return nil
}

func newTestService(t *testing.T, gen *fakeGenerator, store Store) *Service {
	t.Helper()
	if gen.dir == "" {
		gen.dir = t.TempDir()
	}
	if gen.data == nil {
		gen.data = []byte("png bytes")
	}
	return NewService(gen, store, zap.NewNop())
}

func TestGenerateDefaultDimensions(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(t, gen, nil)

	req := &models.PosterRequest{City: "Tokyo", Country: "Japan"}
	output, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gen.lastWidth != 12 || gen.lastHeight != 16 {
		t.Errorf("dimensions = (%g, %g), want (12, 16)", gen.lastWidth, gen.lastHeight)
	}
	if req.Theme != "noir" {
		t.Errorf("theme default = %q, want noir", req.Theme)
	}
	if req.Distance == nil || *req.Distance != 18000 {
		t.Errorf("distance default = %v, want 18000", req.Distance)
	}
	if string(output.Data) != "png bytes" {
		t.Errorf("data = %q", output.Data)
	}
}

func TestGeneratePresetDimensions(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(t, gen, nil)

	five, seven := 5.0, 7.0
	req := &models.PosterRequest{City: "Tokyo", Country: "Japan", Size: "instagram", Width: &five, Height: &seven}
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Preset beats the explicit pair
	if gen.lastWidth != 3.6 || gen.lastHeight != 3.6 {
		t.Errorf("dimensions = (%g, %g), want (3.6, 3.6)", gen.lastWidth, gen.lastHeight)
	}
}

func TestGenerateInvalidThemeNeverInvokes(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(t, gen, nil)

	req := &models.PosterRequest{City: "Tokyo", Country: "Japan", Theme: "vaporwave"}
	_, err := svc.Generate(context.Background(), req)

	var validationErr *catalog.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *catalog.ValidationError, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator invoked %d times for an invalid theme", gen.calls)
	}
}

func TestGenerateErrorPassthrough(t *testing.T) {
	gen := &fakeGenerator{err: generator.ErrTimeout}
	svc := newTestService(t, gen, nil)

	req := &models.PosterRequest{City: "Tokyo", Country: "Japan"}
	_, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, generator.ErrTimeout) {
		t.Fatalf("expected ErrTimeout passthrough, got %v", err)
	}
}

func TestGenerateFilenameShape(t *testing.T) {
	svc := newTestService(t, &fakeGenerator{}, nil)

	req := &models.PosterRequest{City: "Tokyo", Country: "Japan", Theme: "ocean"}
	output, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	pattern := regexp.MustCompile(`^Tokyo_Japan_ocean_[0-9a-f]{8}\.png$`)
	if !pattern.MatchString(output.Filename) {
		t.Errorf("filename = %q, want match for %s", output.Filename, pattern)
	}
}

func TestGenerateCacheHitSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{}
	store := &fakeStore{
		enabled: true,
		entries: map[string][]byte{"Tokyo_noir": []byte("cached png")},
	}
	svc := newTestService(t, gen, store)

	req := &models.PosterRequest{City: "Tokyo", Country: "Japan"}
	output, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gen.calls != 0 {
		t.Errorf("generator invoked %d times on a cache hit", gen.calls)
	}
	if !output.FromCache || string(output.Data) != "cached png" {
		t.Errorf("output = %+v, want cached bytes", output)
	}
}

func TestGenerateCacheMissStoresResult(t *testing.T) {
	gen := &fakeGenerator{}
	store := &fakeStore{enabled: true, entries: map[string][]byte{}}
	svc := newTestService(t, gen, store)

	req := &models.PosterRequest{City: "Tokyo", Country: "Japan"}
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if store.sets != 1 {
		t.Errorf("cache writes = %d, want 1", store.sets)
	}
	if string(store.entries["Tokyo_noir"]) != "png bytes" {
		t.Errorf("cached = %q", store.entries["Tokyo_noir"])
	}
}

func TestGenerateCacheDisabledAlwaysInvokes(t *testing.T) {
	gen := &fakeGenerator{}
	store := &fakeStore{enabled: false, entries: map[string][]byte{"Tokyo_noir": []byte("stale")}}
	svc := newTestService(t, gen, store)

	req := &models.PosterRequest{City: "Tokyo", Country: "Japan"}
	output, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if output.FromCache {
		t.Error("output marked as cached with cache disabled")
	}
	if store.sets != 0 {
		t.Errorf("cache writes = %d with cache disabled", store.sets)
	}
}
