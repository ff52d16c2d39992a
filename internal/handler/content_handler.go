package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medialib/content-api/internal/dto"
	"github.com/medialib/content-api/internal/middleware"
	"github.com/medialib/content-api/internal/models"
	appErrors "github.com/medialib/content-api/pkg/errors"
	"github.com/medialib/content-api/pkg/response"
)

type contentService interface {
	List(ctx context.Context, filter models.ContentFilter) (*dto.ContentListResponse, bool, error)
	GetByID(ctx context.Context, id int64) (*models.Content, bool, error)
	Search(ctx context.Context, q, contentType string, page, limit int) (*dto.SearchResponse, bool, error)
	Recent(ctx context.Context, limit int, contentType string) (*dto.RecentResponse, error)
	ByAuthor(ctx context.Context, author string) (*dto.ByAuthorResponse, error)
}

// ContentHandler wires the content read operations to HTTP endpoints.
type ContentHandler struct {
	service contentService
}

// NewContentHandler constructs the handler.
func NewContentHandler(service contentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// List godoc
// @Summary List content with optional filters
// @Tags Content
// @Produce json
// @Param type query string false "Matches source_type or media_type"
// @Param format query string false "Exact file format"
// @Param author query string false "Author name substring, case-insensitive"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {object} dto.ContentListResponse
// @Router /content [get]
func (h *ContentHandler) List(c *gin.Context) {
	filter := models.ContentFilter{
		Type:   strings.TrimSpace(c.Query("type")),
		Format: strings.TrimSpace(c.Query("format")),
		Author: strings.TrimSpace(c.Query("author")),
		Page:   intQuery(c, "page"),
		Limit:  intQuery(c, "limit"),
	}

	resp, cacheHit, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.OK(c, resp)
}

// GetByID godoc
// @Summary Fetch one content record
// @Tags Content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.Content
// @Failure 404 {object} map[string]string
// @Router /content/{id} [get]
func (h *ContentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid content id"))
		return
	}

	item, cacheHit, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.OK(c, item)
}

// Search godoc
// @Summary Full-text search across title, body, author and topics
// @Tags Content
// @Produce json
// @Param q query string true "Search term"
// @Param type query string false "Matches source_type or media_type"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /search [get]
func (h *ContentHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Query parameter 'q' is required"))
		return
	}

	resp, cacheHit, err := h.service.Search(c.Request.Context(), q,
		strings.TrimSpace(c.Query("type")), intQuery(c, "page"), intQuery(c, "limit"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.OK(c, resp)
}

// Recent godoc
// @Summary Most recently created content
// @Tags Content
// @Produce json
// @Param limit query int false "Number of records (default 10, max 100)"
// @Param type query string false "Matches source_type or media_type"
// @Success 200 {object} dto.RecentResponse
// @Router /content/recent [get]
func (h *ContentHandler) Recent(c *gin.Context) {
	resp, err := h.service.Recent(c.Request.Context(), intQuery(c, "limit"), strings.TrimSpace(c.Query("type")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// ByAuthor godoc
// @Summary All content by an author
// @Tags Content
// @Produce json
// @Param author query string true "Author name substring, case-insensitive"
// @Success 200 {object} dto.ByAuthorResponse
// @Failure 400 {object} map[string]string
// @Router /content/by-author [get]
func (h *ContentHandler) ByAuthor(c *gin.Context) {
	author := strings.TrimSpace(c.Query("author"))
	if author == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Query parameter 'author' is required"))
		return
	}

	resp, err := h.service.ByAuthor(c.Request.Context(), author)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// intQuery coerces a query parameter to an int; absent or malformed values
// return 0 and fall back to the operation default downstream.
func intQuery(c *gin.Context, name string) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
