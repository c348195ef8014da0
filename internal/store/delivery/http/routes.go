package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-sync/internal/middleware"
)

// RegisterRoutes maps the store's REST surface. Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("/:ownerId", h.List)
	}
}
