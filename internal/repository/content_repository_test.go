package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialib/content-api/internal/models"
)

func newContentMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var contentTestColumns = []string{
	"id", "title", "content_text", "author_name", "source_type", "media_type", "file_format",
	"ai_topics", "ai_sentiment", "ai_processing_status", "word_count", "file_size", "duration_seconds",
	"dimensions", "resolution", "page_count", "course_level", "tags", "thumbnail_url", "video_id",
	"r2_source_path", "created_date",
}

func contentRow(rows *sqlmock.Rows, id int64, title, author string) *sqlmock.Rows {
	return rows.AddRow(id, title, nil, author, "youtube", "video", "mp4",
		[]byte(`["go"]`), nil, "completed", nil, nil, 120,
		nil, nil, nil, nil, nil, nil, nil,
		nil, time.Now())
}

func TestContentRepositoryListNoFilters(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	rows := contentRow(sqlmock.NewRows(contentTestColumns), 1, "First", "Jane Doe")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content ORDER BY created_date DESC LIMIT $1 OFFSET $2")).
		WithArgs(50, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM content")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(101))

	items, total, err := repo.List(context.Background(), models.ContentFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 101, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryListTypeMatchesEitherColumn(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	rows := contentRow(sqlmock.NewRows(contentTestColumns), 2, "Clip", "Janet Smith")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content WHERE (source_type = $1 OR media_type = $1) ORDER BY created_date DESC LIMIT $2 OFFSET $3")).
		WithArgs("video", 50, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM content WHERE (source_type = $1 OR media_type = $1)")).
		WithArgs("video").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	items, total, err := repo.List(context.Background(), models.ContentFilter{Type: "video", Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryListAllFilters(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content WHERE (source_type = $1 OR media_type = $1) AND file_format = $2 AND author_name ILIKE $3 ORDER BY created_date DESC LIMIT $4 OFFSET $5")).
		WithArgs("video", "mp4", "%jan%", 20, 20).
		WillReturnRows(sqlmock.NewRows(contentTestColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM content WHERE (source_type = $1 OR media_type = $1) AND file_format = $2 AND author_name ILIKE $3")).
		WithArgs("video", "mp4", "%jan%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	items, total, err := repo.List(context.Background(), models.ContentFilter{
		Type: "video", Format: "mp4", Author: "jan", Page: 2, Limit: 20,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	rows := contentRow(sqlmock.NewRows(contentTestColumns), 42, "Found", "Jane Doe")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	item, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryFindByIDNoRows(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content WHERE id = $1")).
		WithArgs(int64(99999999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99999999)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositorySearchSpansSearchColumns(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	rows := contentRow(sqlmock.NewRows(contentTestColumns), 3, "Go Basics", "Jane Doe")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content WHERE (title ILIKE $1 OR content_text ILIKE $1 OR author_name ILIKE $1 OR ai_topics::text ILIKE $1) ORDER BY created_date DESC LIMIT $2 OFFSET $3")).
		WithArgs("%go%", 20, 0).
		WillReturnRows(rows)

	items, err := repo.Search(context.Background(), "go", "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositorySearchWithTypeFilter(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content WHERE (title ILIKE $1 OR content_text ILIKE $1 OR author_name ILIKE $1 OR ai_topics::text ILIKE $1) AND (source_type = $2 OR media_type = $2) ORDER BY created_date DESC LIMIT $3 OFFSET $4")).
		WithArgs("%go%", "article", 20, 0).
		WillReturnRows(sqlmock.NewRows(contentTestColumns))

	items, err := repo.Search(context.Background(), "go", "article", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryRecent(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	rows := contentRow(sqlmock.NewRows(contentTestColumns), 4, "Newest", "Jane Doe")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content ORDER BY created_date DESC LIMIT $1")).
		WithArgs(10).
		WillReturnRows(rows)

	items, err := repo.Recent(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepositoryByAuthorSubstring(t *testing.T) {
	db, mock, cleanup := newContentMock(t)
	defer cleanup()
	repo := NewContentRepository(db)

	rows := sqlmock.NewRows(contentTestColumns)
	rows = contentRow(rows, 5, "First", "Jane Doe")
	rows = contentRow(rows, 6, "Second", "Janet Smith")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+contentColumns+" FROM content WHERE author_name ILIKE $1 ORDER BY created_date DESC")).
		WithArgs("%jan%").
		WillReturnRows(rows)

	items, err := repo.ByAuthor(context.Background(), "jan")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
