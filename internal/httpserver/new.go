package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-task-sync/internal/middleware"
	storeRepo "personal-task-sync/internal/store/repository"
	taskRepo "personal-task-sync/internal/task/repository"
	"personal-task-sync/pkg/log"
	"personal-task-sync/pkg/notify"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	serviceName string
	mw          middleware.Middleware
	readyChecks map[string]ReadyCheck

	// Task domain
	taskRemote taskRepo.RemoteRepository
	taskCache  taskRepo.CacheRepository
	notifier   notify.INotifier

	// Store domain
	storeRepo storeRepo.Repository
}

// Config is the dependency bag passed to New(). A domain is mounted only
// when its dependencies are set.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ServiceName string
	Middleware  middleware.Middleware
	ReadyChecks map[string]ReadyCheck // run by /ready, keyed by dependency name

	// Task domain
	TaskRemote taskRepo.RemoteRepository
	TaskCache  taskRepo.CacheRepository
	Notifier   notify.INotifier

	// Store domain
	StoreRepository storeRepo.Repository
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = ServiceName
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		serviceName: serviceName,
		mw:          cfg.Middleware,
		readyChecks: cfg.ReadyChecks,
		taskRemote:  cfg.TaskRemote,
		taskCache:   cfg.TaskCache,
		notifier:    cfg.Notifier,
		storeRepo:   cfg.StoreRepository,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if (srv.taskRemote == nil) != (srv.taskCache == nil) {
		return errors.New("task domain needs both a remote repository and a cache")
	}
	if srv.taskRemote == nil && srv.storeRepo == nil {
		return errors.New("no domain configured")
	}
	return nil
}
