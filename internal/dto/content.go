package dto

import "github.com/medialib/content-api/internal/models"

// ContentListFilters echoes the filters that were applied to a list request.
type ContentListFilters struct {
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Author string `json:"author,omitempty"`
}

// ContentListResponse is the payload for GET /content.
type ContentListResponse struct {
	Content    []models.Content   `json:"content"`
	Pagination models.Pagination  `json:"pagination"`
	Filters    ContentListFilters `json:"filters"`
}

// SearchResponse is the payload for GET /search. No total count: only the
// size of the returned page.
type SearchResponse struct {
	Query   string           `json:"query"`
	Type    string           `json:"type"`
	Results []models.Content `json:"results"`
	Count   int              `json:"count"`
}

// RecentResponse is the payload for GET /content/recent.
type RecentResponse struct {
	RecentContent []models.Content `json:"recent_content"`
	Count         int              `json:"count"`
	Type          string           `json:"type"`
}

// ByAuthorResponse is the payload for GET /content/by-author.
type ByAuthorResponse struct {
	Author  string           `json:"author"`
	Content []models.Content `json:"content"`
	Count   int              `json:"count"`
}
