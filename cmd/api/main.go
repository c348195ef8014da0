package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-task-sync/config"
	_ "personal-task-sync/docs" // Swagger docs
	"personal-task-sync/internal/httpserver"
	"personal-task-sync/internal/middleware"
	"personal-task-sync/internal/task/repository"
	"personal-task-sync/internal/task/repository/cache"
	"personal-task-sync/internal/task/repository/remote"
	"personal-task-sync/pkg/datemath"
	"personal-task-sync/pkg/log"
	"personal-task-sync/pkg/notify"
	pkgRedis "personal-task-sync/pkg/redis"
	"personal-task-sync/pkg/scope"
	"personal-task-sync/pkg/telegram"
)

// @title       Personal Task Sync API
// @description Offline-first personal task list synchronised with a remote task store.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
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

	logger.Info(ctx, "Starting Personal Task Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store: %s", cfg.Store.BaseURL)

	// 3. Date normalisation
	dateMathParser, dtErr := datemath.NewParser(cfg.Dates.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dates.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Remote task store
	storeClient := remote.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout)
	taskRemote := remote.New(storeClient, dateMathParser, logger)

	// 5. Local cache
	taskCache, err := newCache(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize local cache: ", err)
		return
	}

	// 6. Notifications
	notifiers := []notify.INotifier{notify.NewLogNotifier(logger)}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifiers = append(notifiers, notify.NewTelegramNotifier(telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatID, logger))
		logger.Info(ctx, "✅ Telegram notifications enabled")
	}

	// 7. Identity
	var jwtManager scope.Manager
	if cfg.JWT.Secret != "" {
		jwtManager = scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
	} else {
		logger.Warn(ctx, "JWT_SECRET is not set: every request is anonymous and tasks cannot be added")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, jwtManager, 0),
		TaskRemote:  taskRemote,
		TaskCache:   taskCache,
		Notifier:    notify.NewMulti(notifiers...),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newCache builds the configured cache backend. An unreachable Redis falls
// back to the file cache.
func newCache(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.CacheRepository, error) {
	key := cache.Key(cfg.Cache.Prefix, cfg.Cache.Key)

	if cfg.Cache.Driver == config.CacheDriverRedis {
		client, err := pkgRedis.Connect(ctx, pkgRedis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err == nil {
			logger.Infof(ctx, "✅ Redis cache at %s (key %s)", cfg.Redis.Addr, key)
			return cache.NewRedis(client, key, logger), nil
		}
		logger.Warnf(ctx, "Redis unavailable, falling back to file cache: %v", err)
	}

	logger.Infof(ctx, "File cache in %s (key %s)", cfg.Cache.Dir, key)
	return cache.NewFile(cfg.Cache.Dir, key, logger)
}
