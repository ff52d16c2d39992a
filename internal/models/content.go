package models

import (
	"encoding/json"
	"time"
)

// AI processing statuses set by the ingestion pipeline.
const (
	ProcessingStatusPending   = "pending"
	ProcessingStatusCompleted = "completed"
)

// Content is one media item in the shared content universe. The table is wide
// and sparsely populated: videos, transcripts, articles, books and courses all
// live in it, so most columns are nullable and only apply to some media types.
type Content struct {
	ID                 int64           `db:"id" json:"id"`
	Title              *string         `db:"title" json:"title"`
	ContentText        *string         `db:"content_text" json:"content_text"`
	AuthorName         *string         `db:"author_name" json:"author_name"`
	SourceType         *string         `db:"source_type" json:"source_type"`
	MediaType          *string         `db:"media_type" json:"media_type"`
	FileFormat         *string         `db:"file_format" json:"file_format"`
	AITopics           json.RawMessage `db:"ai_topics" json:"ai_topics"`
	AISentiment        *string         `db:"ai_sentiment" json:"ai_sentiment"`
	AIProcessingStatus *string         `db:"ai_processing_status" json:"ai_processing_status"`
	WordCount          *int64          `db:"word_count" json:"word_count"`
	FileSize           *int64          `db:"file_size" json:"file_size"`
	DurationSeconds    *int64          `db:"duration_seconds" json:"duration_seconds"`
	Dimensions         *string         `db:"dimensions" json:"dimensions"`
	Resolution         *string         `db:"resolution" json:"resolution"`
	PageCount          *int64          `db:"page_count" json:"page_count"`
	CourseLevel        *string         `db:"course_level" json:"course_level"`
	Tags               json.RawMessage `db:"tags" json:"tags"`
	ThumbnailURL       *string         `db:"thumbnail_url" json:"thumbnail_url"`
	VideoID            *string         `db:"video_id" json:"video_id"`
	R2SourcePath       *string         `db:"r2_source_path" json:"r2_source_path"`
	CreatedDate        time.Time       `db:"created_date" json:"created_date"`
}

// ContentFilter narrows the list operation. Zero values mean "no filter";
// an absent filter omits its clause entirely rather than matching NULL.
type ContentFilter struct {
	Type   string `form:"type"`
	Format string `form:"format"`
	Author string `form:"author"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// ContentSummary is the trimmed record shape used by the stats payload.
type ContentSummary struct {
	ID          int64     `db:"id" json:"id"`
	Title       *string   `db:"title" json:"title"`
	SourceType  *string   `db:"source_type" json:"source_type"`
	MediaType   *string   `db:"media_type" json:"media_type"`
	CreatedDate time.Time `db:"created_date" json:"created_date"`
}
