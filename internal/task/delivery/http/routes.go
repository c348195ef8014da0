package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Auth is
// optional on every route; anonymous callers work against the cached list.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	session := rg.Group("/session")
	{
		session.POST("", mw.Auth(), h.LoadSession)
		session.DELETE("", mw.Auth(), h.Logout)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("", mw.Auth(), h.Create)
		tasks.PATCH("/:id/toggle", mw.Auth(), h.Toggle)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
