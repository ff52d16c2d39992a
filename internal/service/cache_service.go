package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/medialib/content-api/pkg/errors"
)

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Key derives a deterministic cache key from an operation name and its
// effective parameters, defaults included. Parameters are serialized in sorted
// order with URL escaping, so two logically identical requests always share an
// entry and differing requests never collide, regardless of query-string order.
func Key(operation string, params map[string]string) string {
	if len(params) == 0 {
		return operation
	}
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return operation + ":" + values.Encode()
}

// CacheService wraps the cache repository with the degrade-on-failure policy:
// the cache is an optimization, never a correctness dependency. A failed read
// is a miss, a failed write is logged and swallowed.
type CacheService struct {
	repo    CacheRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewCacheService constructs a cache service.
func NewCacheService(repo CacheRepository, metrics *MetricsService, logger *zap.Logger) *CacheService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, logger: logger}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Get attempts to retrieve a cached entry into dest. It returns true only on a
// hit; cache errors are logged and reported as misses.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	if !s.Enabled() {
		return false
	}
	start := time.Now()
	err := s.repo.Get(ctx, key, dest)
	duration := time.Since(start)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(false, duration)
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(true, duration)
	}
	return true
}

// Set stores the value under key with the given TTL, best-effort.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !s.Enabled() || ttl <= 0 {
		return
	}
	start := time.Now()
	err := s.repo.Set(ctx, key, value, ttl)
	if s.metrics != nil {
		s.metrics.ObserveCacheWrite(time.Since(start))
	}
	if err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}
