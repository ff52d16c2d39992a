package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/medialib/content-api/internal/models"
)

type statsRepository interface {
	TotalCount(ctx context.Context) (int64, error)
	CountBySourceType(ctx context.Context) (map[string]int64, error)
	CountByMediaType(ctx context.Context) (map[string]int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	AverageWordCount(ctx context.Context) (float64, error)
	Latest(ctx context.Context) (*models.ContentSummary, error)
}

// StatsService composes the aggregate statistics payload. The sub-queries run
// concurrently and the whole response fails if any one of them fails.
type StatsService struct {
	repo    statsRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
	now     func() time.Time
}

// NewStatsService constructs a StatsService.
func NewStatsService(repo statsRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger, ttl time.Duration) *StatsService {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, cache: cache, metrics: metrics, logger: logger, ttl: ttl, now: time.Now}
}

// Stats returns the aggregate view of the content universe. The second return
// value reports whether the response came from cache.
func (s *StatsService) Stats(ctx context.Context) (*models.ContentStats, bool, error) {
	key := Key("content:stats", nil)
	var cached models.ContentStats
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}

	start := time.Now()
	var stats models.ContentStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.repo.TotalCount(gctx)
		stats.TotalContent = total
		return err
	})
	g.Go(func() error {
		counts, err := s.repo.CountBySourceType(gctx)
		stats.ContentBySourceType = counts
		return err
	})
	g.Go(func() error {
		counts, err := s.repo.CountByMediaType(gctx)
		stats.ContentByMediaType = counts
		return err
	})
	g.Go(func() error {
		count, err := s.repo.CountByStatus(gctx, models.ProcessingStatusCompleted)
		stats.ProcessedContent = count
		return err
	})
	g.Go(func() error {
		count, err := s.repo.CountByStatus(gctx, models.ProcessingStatusPending)
		stats.PendingContent = count
		return err
	})
	g.Go(func() error {
		avg, err := s.repo.AverageWordCount(gctx)
		stats.AverageWordCount = avg
		return err
	})
	g.Go(func() error {
		latest, err := s.repo.Latest(gctx)
		stats.LatestContent = latest
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	s.metrics.ObserveDBQuery("content_stats", time.Since(start))

	stats.LastUpdated = s.now().UTC()
	s.cache.Set(ctx, key, &stats, s.ttl)
	return &stats, false, nil
}
