package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	storeHTTP "personal-task-sync/internal/store/delivery/http"
	storeUC "personal-task-sync/internal/store/usecase"
)

// setupStoreDomain registers the reference store's /tasks routes.
func (srv HTTPServer) setupStoreDomain(ctx context.Context, rg *gin.RouterGroup) error {
	// 1. UseCase
	uc := storeUC.New(srv.storeRepo, srv.l)

	// 2. HTTP Handler
	h := storeHTTP.New(srv.l, uc)

	// 3. Routes: registers /tasks and /tasks/:ownerId
	storeHTTP.RegisterRoutes(rg, h, srv.mw)

	srv.l.Infof(ctx, "Store domain registered")
	return nil
}
