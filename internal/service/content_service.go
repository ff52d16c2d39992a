package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/medialib/content-api/internal/dto"
	"github.com/medialib/content-api/internal/models"
	appErrors "github.com/medialib/content-api/pkg/errors"
)

// Operation defaults. Limits below 1 fall back to these; anything above the
// configured maximum is clamped.
const (
	defaultListLimit   = 50
	defaultSearchLimit = 20
	defaultRecentLimit = 10
	defaultMaxLimit    = 100
)

type contentReader interface {
	List(ctx context.Context, filter models.ContentFilter) ([]models.Content, int, error)
	FindByID(ctx context.Context, id int64) (*models.Content, error)
	Search(ctx context.Context, q, contentType string, limit, offset int) ([]models.Content, error)
	Recent(ctx context.Context, limit int, contentType string) ([]models.Content, error)
	ByAuthor(ctx context.Context, author string) ([]models.Content, error)
}

// ContentServiceConfig tunes TTLs and request shaping.
type ContentServiceConfig struct {
	ListTTL      time.Duration
	DetailTTL    time.Duration
	SearchTTL    time.Duration
	MaxPageLimit int
}

// ContentService implements the cache-aside read path for every content
// operation: derive key, try the cache, on miss query the store and write the
// result back with the operation's TTL. Recent and by-author stay uncached:
// both serve freshness-sensitive views.
type ContentService struct {
	repo    contentReader
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	cfg     ContentServiceConfig
}

// NewContentService constructs a ContentService with sane defaults.
func NewContentService(repo contentReader, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg ContentServiceConfig) *ContentService {
	if cfg.ListTTL <= 0 {
		cfg.ListTTL = 5 * time.Minute
	}
	if cfg.DetailTTL <= 0 {
		cfg.DetailTTL = 10 * time.Minute
	}
	if cfg.SearchTTL <= 0 {
		cfg.SearchTTL = 5 * time.Minute
	}
	if cfg.MaxPageLimit <= 0 {
		cfg.MaxPageLimit = defaultMaxLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{repo: repo, cache: cache, metrics: metrics, logger: logger, cfg: cfg}
}

// List returns a filtered, paginated slice of the content universe together
// with the total count for the same filters. The second return value reports
// whether the response came from cache.
func (s *ContentService) List(ctx context.Context, filter models.ContentFilter) (*dto.ContentListResponse, bool, error) {
	filter.Page = sanitizePage(filter.Page)
	filter.Limit = s.sanitizeLimit(filter.Limit, defaultListLimit)

	key := Key("content:list", map[string]string{
		"type":   filter.Type,
		"format": filter.Format,
		"author": filter.Author,
		"page":   strconv.Itoa(filter.Page),
		"limit":  strconv.Itoa(filter.Limit),
	})
	var cached dto.ContentListResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}

	start := time.Now()
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, false, err
	}
	s.metrics.ObserveDBQuery("content_list", time.Since(start))

	resp := &dto.ContentListResponse{
		Content:    items,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
		Filters: dto.ContentListFilters{
			Type:   filter.Type,
			Format: filter.Format,
			Author: filter.Author,
		},
	}
	s.cache.Set(ctx, key, resp, s.cfg.ListTTL)
	return resp, false, nil
}

// GetByID returns a single record or a not-found error.
func (s *ContentService) GetByID(ctx context.Context, id int64) (*models.Content, bool, error) {
	key := Key("content:detail", map[string]string{"id": strconv.FormatInt(id, 10)})
	var cached models.Content
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}

	start := time.Now()
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "Content not found")
		}
		return nil, false, err
	}
	s.metrics.ObserveDBQuery("content_detail", time.Since(start))

	s.cache.Set(ctx, key, item, s.cfg.DetailTTL)
	return item, false, nil
}

// Search runs the full-text search operation. A q matching nothing is a valid
// empty result, not an error; required-parameter validation is the handler's.
func (s *ContentService) Search(ctx context.Context, q, contentType string, page, limit int) (*dto.SearchResponse, bool, error) {
	page = sanitizePage(page)
	limit = s.sanitizeLimit(limit, defaultSearchLimit)
	offset := (page - 1) * limit

	key := Key("content:search", map[string]string{
		"q":     q,
		"type":  contentType,
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	})
	var cached dto.SearchResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}

	start := time.Now()
	items, err := s.repo.Search(ctx, q, contentType, limit, offset)
	if err != nil {
		return nil, false, err
	}
	s.metrics.ObserveDBQuery("content_search", time.Since(start))

	resp := &dto.SearchResponse{
		Query:   q,
		Type:    contentType,
		Results: items,
		Count:   len(items),
	}
	s.cache.Set(ctx, key, resp, s.cfg.SearchTTL)
	return resp, false, nil
}

// Recent returns the newest records. Uncached.
func (s *ContentService) Recent(ctx context.Context, limit int, contentType string) (*dto.RecentResponse, error) {
	limit = s.sanitizeLimit(limit, defaultRecentLimit)

	start := time.Now()
	items, err := s.repo.Recent(ctx, limit, contentType)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDBQuery("content_recent", time.Since(start))

	return &dto.RecentResponse{
		RecentContent: items,
		Count:         len(items),
		Type:          contentType,
	}, nil
}

// ByAuthor returns every record matching the author substring. Uncached.
func (s *ContentService) ByAuthor(ctx context.Context, author string) (*dto.ByAuthorResponse, error) {
	start := time.Now()
	items, err := s.repo.ByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDBQuery("content_by_author", time.Since(start))

	return &dto.ByAuthorResponse{
		Author:  author,
		Content: items,
		Count:   len(items),
	}, nil
}

func sanitizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func (s *ContentService) sanitizeLimit(limit, fallback int) int {
	if limit < 1 {
		return fallback
	}
	if limit > s.cfg.MaxPageLimit {
		return s.cfg.MaxPageLimit
	}
	return limit
}
