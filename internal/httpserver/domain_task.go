package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "personal-task-sync/internal/task/delivery/http"
	taskUC "personal-task-sync/internal/task/usecase"
)

// setupTaskDomain wires the task use case over the configured remote store
// and local cache, and registers /api/v1/session and /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := taskUC.New(srv.l, srv.taskRemote, srv.taskCache, srv.notifier)

	// 2. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 3. Routes
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
