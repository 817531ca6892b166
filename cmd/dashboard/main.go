package main

// @title Trip Dashboard API
// @version 1.0.0
// @description Дашборд поездок: KPI, графики, тепловая карта и таблица поездок поверх внешнего API агрегатов.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/trip-dashboard/docs"
	"github.com/trip-dashboard/internal/config"
	httpDelivery "github.com/trip-dashboard/internal/delivery/http"
	"github.com/trip-dashboard/internal/infrastructure/tripapi"
	"github.com/trip-dashboard/internal/pkg/format"
	"github.com/trip-dashboard/internal/pkg/logger"
	"github.com/trip-dashboard/internal/repository/cache"
	"github.com/trip-dashboard/internal/usecase"
	"github.com/trip-dashboard/internal/view"
	"github.com/trip-dashboard/internal/worker"
	"github.com/trip-dashboard/internal/worker/session"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Trip Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("trip_api", cfg.TripAPI.BaseURL),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("concurrent_fetch", cfg.Dashboard.ConcurrentFetch),
	)

	// 3. Trip API client
	tripAPI := tripapi.NewClient(cfg, log.With(zap.String("component", "tripapi")))

	// 4. Optional Redis response cache
	var redisClient *cache.Redis
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		tripAPI = cache.NewCachedTripAPI(
			tripAPI,
			cache.NewCacheRepository(redisClient),
			cache.TTLsFromConfig(&cfg.Cache),
			log.With(zap.String("component", "tripapi_cache")),
		)
		log.Info("Redis cache enabled")
	}

	// 5. Use cases
	sessions := usecase.NewSessionUseCase(
		tripAPI,
		format.New(cfg.Dashboard.Locale),
		usecase.ControllerSettings{
			HeatmapLimit:    cfg.Dashboard.HeatmapLimit,
			TripsLimit:      cfg.Dashboard.TripsLimit,
			ConcurrentFetch: cfg.Dashboard.ConcurrentFetch,
		},
		view.FormValues{
			Start: cfg.Dashboard.DefaultStart,
			End:   cfg.Dashboard.DefaultEnd,
		},
		view.MapView{
			CenterLat: cfg.Map.CenterLat,
			CenterLng: cfg.Map.CenterLon,
			Zoom:      cfg.Map.Zoom,
		},
		cfg.Session.IdleTTL,
		cfg.Session.MaxSessions,
		log.With(zap.String("component", "sessions")),
	)

	log.Info("Use cases initialized")

	// 6. Background workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(session.NewSweeperWorker(sessions, cfg.Session.SweepInterval, log))

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if err := workerManager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Initialize HTTP Server
	server, err := httpDelivery.NewServer(cfg, log, sessions)
	if err != nil {
		log.Fatal("Failed to initialize HTTP server", zap.Error(err))
	}

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	cancelWorkers()
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
