package main

// @title Manara Web API
// @version 1.0.0
// @description Mosque directory and donation progress for the Manara front end.
// @description The HTML pages are rendered on the server; the JSON API exposes the same data.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/manara-web/docs"
	"github.com/manara-web/internal/config"
	httpDelivery "github.com/manara-web/internal/delivery/http"
	"github.com/manara-web/internal/delivery/http/handler"
	"github.com/manara-web/internal/delivery/http/view"
	"github.com/manara-web/internal/domain/repository"
	"github.com/manara-web/internal/infrastructure/leaflet"
	"github.com/manara-web/internal/infrastructure/manara"
	"github.com/manara-web/internal/pkg/logger"
	"github.com/manara-web/internal/repository/cache"
	"github.com/manara-web/internal/repository/mock"
	"github.com/manara-web/internal/usecase"
	"github.com/manara-web/internal/usecase/maprender"
	"github.com/manara-web/internal/worker"
	"github.com/manara-web/internal/worker/session"
	"github.com/manara-web/web"
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

	log.Info("Starting Manara Web")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.Upstream.DataSource),
		zap.String("filter_mode", cfg.Upstream.FilterMode),
	)

	// 3. Mosque data source
	var mosqueRepo repository.MosqueRepository
	switch cfg.Upstream.DataSource {
	case config.DataSourceMock:
		mosqueRepo = mock.NewMosqueRepository(logger.Component(log, "mock"))
		log.Info("Serving the bundled mosque dataset")
	default:
		mosqueRepo = manara.NewClient(&cfg.Upstream, &cfg.Breaker, logger.Component(log, "manara"))
		log.Info("Mosque service client initialized", zap.String("base_url", cfg.Upstream.BaseURL))
	}

	// 4. View state store: Redis when enabled, process memory otherwise
	var viewStateRepo repository.ViewStateRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Health(ctx)
		cancel()
		if err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}

		viewStateRepo = cache.NewViewStateRepository(redisClient)
		log.Info("Redis connected")
	} else {
		viewStateRepo = cache.NewMemoryViewStateRepository()
		log.Info("Redis disabled, view state kept in memory")
	}

	// 5. Initialize Use Cases
	mosqueUC := usecase.NewMosqueUseCase(mosqueRepo, log)
	sessions := usecase.NewSessionManager(
		mosqueUC,
		leaflet.NewFactory(logger.Component(log, "leaflet")),
		maprender.ConfigFrom(cfg.Map),
		viewStateRepo,
		cfg.Session.TTL,
		logger.Component(log, "session"),
	)

	log.Info("Use cases initialized")

	// 6. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	workers := worker.NewWorkerManager(log)
	workers.Register(session.NewJanitorWorker(sessions, cfg.Session.SweepInterval, log))
	if err := workers.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Initialize HTTP Handlers
	views, err := view.NewRenderer(web.FS)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		log.Fatal("Failed to open static assets", zap.Error(err))
	}

	pageHandler := handler.NewPageHandler(mosqueUC, views, log)
	mosqueHandler := handler.NewMosqueHandler(mosqueUC, sessions, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, sessions, static, pageHandler, mosqueHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	stopWorkers()
	if err := workers.Stop(ctx); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	sessions.CloseAll()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
