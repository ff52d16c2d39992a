package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/medialib/content-api/api/swagger"
	"github.com/medialib/content-api/internal/handler"
	"github.com/medialib/content-api/internal/repository"
	"github.com/medialib/content-api/internal/service"
	"github.com/medialib/content-api/pkg/cache"
	"github.com/medialib/content-api/pkg/config"
	"github.com/medialib/content-api/pkg/database"
	"github.com/medialib/content-api/pkg/logger"
)

// @title Media Content API
// @version 1.0.0
// @description Read-only query layer over the media content catalog
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	// The cache is an optimization: a missing Redis degrades every read to a
	// direct store query instead of failing startup.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, serving without cache", "error", err)
		redisClient = nil
	}

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, logr)

	contentRepo := repository.NewContentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	contentSvc := service.NewContentService(contentRepo, cacheSvc, metricsSvc, logr, service.ContentServiceConfig{
		ListTTL:      cfg.Cache.ListTTL,
		DetailTTL:    cfg.Cache.DetailTTL,
		SearchTTL:    cfg.Cache.SearchTTL,
		MaxPageLimit: cfg.API.MaxPageLimit,
	})
	statsSvc := service.NewStatsService(statsRepo, cacheSvc, metricsSvc, logr, cfg.Cache.StatsTTL)

	router := handler.NewRouter(handler.RouterParams{
		Config:  cfg,
		Logger:  logr,
		Metrics: metricsSvc,
		Content: handler.NewContentHandler(contentSvc),
		Stats:   handler.NewStatsHandler(statsSvc),
		Health:  handler.NewHealthHandler(db, cacheRepo, cfg.API.Version),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("server shutdown failed", "error", err)
	}
}
