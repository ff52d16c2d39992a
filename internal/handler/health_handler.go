package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type dbPinger interface {
	PingContext(ctx context.Context) error
}

type cachePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler probes the store and cache.
type HealthHandler struct {
	db      dbPinger
	cache   cachePinger
	version string
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(db dbPinger, cache cachePinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// Check godoc
// @Summary Service health including store and cache reachability
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.db == nil || h.db.PingContext(ctx) != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "unhealthy",
			"error":  "redis unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "connected",
		"redis":     "connected",
		"version":   h.version,
	})
}
