package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medialib/content-api/internal/models"
)

// StatsRepository runs the aggregate queries behind the stats endpoint.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository constructs a StatsRepository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// TotalCount returns the number of records in the content universe.
func (r *StatsRepository) TotalCount(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM content"); err != nil {
		return 0, fmt.Errorf("total count: %w", err)
	}
	return total, nil
}

// CountBySourceType buckets records by source_type. NULL values form no bucket.
func (r *StatsRepository) CountBySourceType(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "source_type")
}

// CountByMediaType buckets records by media_type. NULL values form no bucket.
func (r *StatsRepository) CountByMediaType(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "media_type")
}

// countBy column names come from the two callers above, never from input.
func (r *StatsRepository) countBy(ctx context.Context, column string) (map[string]int64, error) {
	q := fmt.Sprintf("SELECT %s AS value, COUNT(*) AS count FROM content WHERE %s IS NOT NULL GROUP BY %s",
		column, column, column)

	var rows []models.TypeCount
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Count
	}
	return counts, nil
}

// CountByStatus returns how many records carry the given processing status.
func (r *StatsRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM content WHERE ai_processing_status = $1", status); err != nil {
		return 0, fmt.Errorf("count by status %s: %w", status, err)
	}
	return count, nil
}

// AverageWordCount averages word_count across records that have one.
func (r *StatsRepository) AverageWordCount(ctx context.Context) (float64, error) {
	var avg float64
	if err := r.db.GetContext(ctx, &avg, "SELECT COALESCE(AVG(word_count), 0) FROM content"); err != nil {
		return 0, fmt.Errorf("average word count: %w", err)
	}
	return avg, nil
}

// Latest returns a summary of the newest record, or nil on an empty table.
func (r *StatsRepository) Latest(ctx context.Context) (*models.ContentSummary, error) {
	const q = "SELECT id, title, source_type, media_type, created_date FROM content ORDER BY created_date DESC LIMIT 1"
	var summary models.ContentSummary
	if err := r.db.GetContext(ctx, &summary, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest content: %w", err)
	}
	return &summary, nil
}
