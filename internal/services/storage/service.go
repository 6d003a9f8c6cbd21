package storage

import (
	"time"

	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/phambaophuc/map-poster-api/internal/config"
)

// Service bundles the two side stores the API can use: Redis for the poster
// cache and async job records, Supabase Storage for published posters. Both
// are optional; the synchronous generate path works without either.
type Service struct {
	sbClient      *storage_go.Client
	redisClient   *redis.Client
	bucket        string
	cacheEnabled  bool
	cacheDuration time.Duration
	jobDuration   time.Duration
}

func NewService(cfg *config.Config) (*Service, error) {
	var sbClient *storage_go.Client
	if cfg.Supabase.URL != "" && cfg.Supabase.BUCKET != "" {
		sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &Service{
		sbClient:      sbClient,
		redisClient:   redisClient,
		bucket:        cfg.Supabase.BUCKET,
		cacheEnabled:  cfg.Cache.Enabled,
		cacheDuration: cfg.Cache.TTL,
		jobDuration:   24 * time.Hour,
	}, nil
}

// CacheEnabled reports whether the poster cache is switched on. Off by
// default: every request then spawns its own generator run.
func (s *Service) CacheEnabled() bool {
	return s.cacheEnabled
}

// UploadEnabled reports whether Supabase Storage is configured.
func (s *Service) UploadEnabled() bool {
	return s.sbClient != nil
}
