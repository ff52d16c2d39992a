package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestStatsRepositoryTotalCount(t *testing.T) {
	db, mock, cleanup := newStatsMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM content")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(250))

	total, err := repo.TotalCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(250), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryCountBySourceTypeSkipsNull(t *testing.T) {
	db, mock, cleanup := newStatsMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	rows := sqlmock.NewRows([]string{"value", "count"}).
		AddRow("youtube", 120).
		AddRow("article", 80)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT source_type AS value, COUNT(*) AS count FROM content WHERE source_type IS NOT NULL GROUP BY source_type")).
		WillReturnRows(rows)

	counts, err := repo.CountBySourceType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"youtube": 120, "article": 80}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryCountByStatus(t *testing.T) {
	db, mock, cleanup := newStatsMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM content WHERE ai_processing_status = $1")).
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(200))

	count, err := repo.CountByStatus(context.Background(), "completed")
	require.NoError(t, err)
	assert.Equal(t, int64(200), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryAverageWordCount(t *testing.T) {
	db, mock, cleanup := newStatsMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(word_count), 0) FROM content")).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(812.5))

	avg, err := repo.AverageWordCount(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 812.5, avg, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryLatest(t *testing.T) {
	db, mock, cleanup := newStatsMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "source_type", "media_type", "created_date"}).
		AddRow(7, "Newest", "youtube", "video", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, source_type, media_type, created_date FROM content ORDER BY created_date DESC LIMIT 1")).
		WillReturnRows(rows)

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, int64(7), latest.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepositoryLatestEmptyTable(t *testing.T) {
	db, mock, cleanup := newStatsMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, source_type, media_type, created_date FROM content ORDER BY created_date DESC LIMIT 1")).
		WillReturnError(sql.ErrNoRows)

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)
	assert.NoError(t, mock.ExpectationsWereMet())
}
