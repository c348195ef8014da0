package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-task-sync/config"
	_ "personal-task-sync/docs" // Swagger docs
	"personal-task-sync/internal/httpserver"
	"personal-task-sync/internal/middleware"
	"personal-task-sync/internal/store/repository"
	"personal-task-sync/internal/store/repository/memory"
	"personal-task-sync/internal/store/repository/postgre"
	"personal-task-sync/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting task store...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Persistence
	var repo repository.Repository
	readyChecks := map[string]httpserver.ReadyCheck{}
	if cfg.StoreServer.DatabaseURL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err := postgre.Connect(connectCtx, cfg.StoreServer.DatabaseURL)
		cancel()
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer pool.Close()
		repo = postgre.New(pool, logger)
		readyChecks["postgres"] = pool.Ping
		logger.Info(ctx, "✅ PostgreSQL connected")
	} else {
		repo = memory.New()
		logger.Warn(ctx, "DATABASE_URL is not set: using in-memory storage")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.StoreServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ServiceName:     "task-store",
		Middleware:      middleware.New(logger, nil, cfg.StoreServer.RateLimitPerMin),
		StoreRepository: repo,
		ReadyChecks:     readyChecks,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
