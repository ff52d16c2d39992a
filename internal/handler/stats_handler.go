package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/medialib/content-api/internal/middleware"
	"github.com/medialib/content-api/internal/models"
	"github.com/medialib/content-api/pkg/response"
)

type statsService interface {
	Stats(ctx context.Context) (*models.ContentStats, bool, error)
}

// StatsHandler exposes aggregate statistics.
type StatsHandler struct {
	service statsService
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(service statsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Stats godoc
// @Summary Aggregate statistics over the content universe
// @Tags Stats
// @Produce json
// @Success 200 {object} models.ContentStats
// @Router /stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, cacheHit, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.OK(c, stats)
}
