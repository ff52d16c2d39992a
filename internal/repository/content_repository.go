package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medialib/content-api/internal/models"
	"github.com/medialib/content-api/internal/query"
)

const contentColumns = "id, title, content_text, author_name, source_type, media_type, file_format, " +
	"ai_topics, ai_sentiment, ai_processing_status, word_count, file_size, duration_seconds, " +
	"dimensions, resolution, page_count, course_level, tags, thumbnail_url, video_id, r2_source_path, created_date"

// searchColumns are OR'd for the full-text search operation. ai_topics is
// structured but searched through its textual form.
var searchColumns = []string{"title", "content_text", "author_name", "ai_topics::text"}

// ContentRepository reads media metadata records. The table is owned by an
// external ingestion pipeline; this layer never writes.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository constructs a ContentRepository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// List returns records matching the provided filters together with the total
// count for the same WHERE clause. Page and limit are assumed sanitized.
func (r *ContentRepository) List(ctx context.Context, filter models.ContentFilter) ([]models.Content, int, error) {
	b := query.New()
	if filter.Type != "" {
		b.EqAny(filter.Type, "source_type", "media_type")
	}
	if filter.Format != "" {
		b.Eq("file_format", filter.Format)
	}
	if filter.Author != "" {
		b.Contains(filter.Author, "author_name")
	}
	where, args := b.Where()

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf("SELECT %s FROM content%s ORDER BY created_date DESC LIMIT $%d OFFSET $%d",
		contentColumns, where, len(args)+1, len(args)+2)
	listArgs := append(args, filter.Limit, offset)

	items := []models.Content{}
	if err := r.db.SelectContext(ctx, &items, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list content: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM content" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count content: %w", err)
	}

	return items, total, nil
}

// FindByID fetches a single record. sql.ErrNoRows passes through for the
// service layer to translate into a not-found.
func (r *ContentRepository) FindByID(ctx context.Context, id int64) (*models.Content, error) {
	q := fmt.Sprintf("SELECT %s FROM content WHERE id = $1", contentColumns)
	var item models.Content
	if err := r.db.GetContext(ctx, &item, q, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// Search matches q case-insensitively as a substring across the search columns,
// optionally narrowed to a type.
func (r *ContentRepository) Search(ctx context.Context, q, contentType string, limit, offset int) ([]models.Content, error) {
	b := query.New().Contains(q, searchColumns...)
	if contentType != "" {
		b.EqAny(contentType, "source_type", "media_type")
	}
	where, args := b.Where()

	searchQuery := fmt.Sprintf("SELECT %s FROM content%s ORDER BY created_date DESC LIMIT $%d OFFSET $%d",
		contentColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	items := []models.Content{}
	if err := r.db.SelectContext(ctx, &items, searchQuery, args...); err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}
	return items, nil
}

// Recent returns the newest records, optionally narrowed to a type.
func (r *ContentRepository) Recent(ctx context.Context, limit int, contentType string) ([]models.Content, error) {
	b := query.New()
	if contentType != "" {
		b.EqAny(contentType, "source_type", "media_type")
	}
	where, args := b.Where()

	q := fmt.Sprintf("SELECT %s FROM content%s ORDER BY created_date DESC LIMIT $%d",
		contentColumns, where, len(args)+1)
	args = append(args, limit)

	items := []models.Content{}
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, fmt.Errorf("recent content: %w", err)
	}
	return items, nil
}

// ByAuthor returns every record whose author name contains the given substring,
// case-insensitively. No pagination: the operation returns all matches.
func (r *ContentRepository) ByAuthor(ctx context.Context, author string) ([]models.Content, error) {
	where, args := query.New().Contains(author, "author_name").Where()

	q := fmt.Sprintf("SELECT %s FROM content%s ORDER BY created_date DESC", contentColumns, where)

	items := []models.Content{}
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, fmt.Errorf("content by author: %w", err)
	}
	return items, nil
}
