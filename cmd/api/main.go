package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/ebtesamty/dashboard-api/internal/config"
	"github.com/ebtesamty/dashboard-api/internal/handler"
	reportHandler "github.com/ebtesamty/dashboard-api/internal/handler/report"
	registryHandler "github.com/ebtesamty/dashboard-api/internal/handler/registry"
	"github.com/ebtesamty/dashboard-api/internal/middleware"
	"github.com/ebtesamty/dashboard-api/internal/persistence"
	"github.com/ebtesamty/dashboard-api/internal/router"
	reportService "github.com/ebtesamty/dashboard-api/internal/service/report"
	registryService "github.com/ebtesamty/dashboard-api/internal/service/registry"
	"github.com/ebtesamty/dashboard-api/internal/store"
	"github.com/ebtesamty/dashboard-api/internal/worker"
	"github.com/ebtesamty/dashboard-api/pkg/logger"
	"github.com/ebtesamty/dashboard-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	l := logger.NewLogger(nil)

	// Seed the record store, then let the mirror replace the collections
	// with whatever a previous run persisted.
	st := store.New()

	var kv persistence.KV
	if cfg.Redis.URL != "" {
		redisKV, err := persistence.NewRedisKV(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer redisKV.Close()
		kv = redisKV
	} else {
		l.Info("no Redis URL configured, collections will not survive restarts")
		kv = persistence.NewMemoryKV()
	}

	mirror := persistence.NewMirror(kv, st, l)
	mirror.Load(context.Background())

	// Initialize services
	reportSvc := reportService.NewService(st)
	registrySvc := registryService.NewService(st, mirror, l, cfg.Validation.Enforce)

	// Dashboard snapshot cache and metrics
	m := metrics.New("ebtesamty", prometheus.DefaultRegisterer)
	snapshotCache := cache.New(cache.NoExpiration, 0)

	// Start the periodic dashboard refresh
	refresher := worker.NewRefresher(reportSvc, snapshotCache, m, l, cfg.Dashboard.RefreshInterval)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go refresher.Start(workerCtx)

	// Initialize handlers
	h := handler.NewHandler()
	reportH := reportHandler.NewHandler(reportSvc, snapshotCache, cfg.Dashboard)
	registryH := registryHandler.NewHandler(registrySvc)

	// Setup router
	r := router.NewRouter(h, reportH, registryH, m, router.Config{
		RateLimit: middleware.RateLimiterConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		},
		CORSConfig: middleware.DefaultCORSConfig(),
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	// Final save so the slots reflect the latest in-memory state.
	if err := mirror.Save(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to save collections on shutdown")
	}

	log.Info().Msg("server exited properly")
}
