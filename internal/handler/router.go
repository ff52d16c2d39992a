package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/medialib/content-api/internal/middleware"
	"github.com/medialib/content-api/internal/service"
	"github.com/medialib/content-api/pkg/config"
	"github.com/medialib/content-api/pkg/logger"
	corsmiddleware "github.com/medialib/content-api/pkg/middleware/cors"
	reqidmiddleware "github.com/medialib/content-api/pkg/middleware/requestid"
)

// RouterParams groups everything the router needs.
type RouterParams struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *service.MetricsService
	Content *ContentHandler
	Stats   *StatsHandler
	Health  *HealthHandler
}

// NewRouter assembles the gin engine: middleware chain, routes and fallbacks.
func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(p.Logger))
	r.Use(corsmiddleware.New(p.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(p.Metrics))
	if p.Config.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(p.Config.RateLimit.RequestsPerSecond, p.Config.RateLimit.Burst)
		r.Use(rl.Middleware())
	}

	r.GET("/health", p.Health.Check)
	r.GET("/content", p.Content.List)
	r.GET("/content/recent", p.Content.Recent)
	r.GET("/content/by-author", p.Content.ByAuthor)
	r.GET("/content/:id", p.Content.GetByID)
	r.GET("/search", p.Content.Search)
	r.GET("/stats", p.Stats.Stats)

	r.GET("/metrics", NewMetricsHandler(p.Metrics).Prometheus)

	if p.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return r
}
