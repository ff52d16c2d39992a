package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderEmpty(t *testing.T) {
	b := New()
	clause, args := b.Where()
	assert.True(t, b.Empty())
	assert.Equal(t, "", clause)
	assert.Nil(t, args)
}

func TestBuilderEq(t *testing.T) {
	clause, args := New().Eq("file_format", "pdf").Where()
	assert.Equal(t, " WHERE file_format = $1", clause)
	assert.Equal(t, []interface{}{"pdf"}, args)
}

func TestBuilderEqAnySharesPlaceholder(t *testing.T) {
	clause, args := New().EqAny("video", "source_type", "media_type").Where()
	assert.Equal(t, " WHERE (source_type = $1 OR media_type = $1)", clause)
	assert.Equal(t, []interface{}{"video"}, args)
}

func TestBuilderContainsSingleColumn(t *testing.T) {
	clause, args := New().Contains("jan", "author_name").Where()
	assert.Equal(t, " WHERE author_name ILIKE $1", clause)
	assert.Equal(t, []interface{}{"%jan%"}, args)
}

func TestBuilderContainsMultiColumn(t *testing.T) {
	clause, args := New().Contains("go", "title", "content_text").Where()
	assert.Equal(t, " WHERE (title ILIKE $1 OR content_text ILIKE $1)", clause)
	assert.Equal(t, []interface{}{"%go%"}, args)
}

func TestBuilderChainedPredicatesNumberSequentially(t *testing.T) {
	b := New().
		EqAny("video", "source_type", "media_type").
		Eq("file_format", "mp4").
		Contains("doe", "author_name")
	clause, args := b.Where()
	assert.Equal(t, " WHERE (source_type = $1 OR media_type = $1) AND file_format = $2 AND author_name ILIKE $3", clause)
	assert.Equal(t, []interface{}{"video", "mp4", "%doe%"}, args)
}

func TestBuilderEscapesLikeMetacharacters(t *testing.T) {
	_, args := New().Contains(`50%_off\`, "title").Where()
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
}
