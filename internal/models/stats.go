package models

import "time"

// TypeCount is one bucket of a GROUP BY aggregate.
type TypeCount struct {
	Value string `db:"value"`
	Count int64  `db:"count"`
}

// ContentStats aggregates the whole content universe for the stats endpoint.
type ContentStats struct {
	TotalContent        int64            `json:"total_content"`
	ContentBySourceType map[string]int64 `json:"content_by_source_type"`
	ContentByMediaType  map[string]int64 `json:"content_by_media_type"`
	ProcessedContent    int64            `json:"processed_content"`
	PendingContent      int64            `json:"pending_content"`
	AverageWordCount    float64          `json:"average_word_count"`
	LatestContent       *ContentSummary  `json:"latest_content"`
	LastUpdated         time.Time        `json:"last_updated"`
}
