package routes

import (
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/handlers"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type ViewsRoutes struct {
	handler *handlers.ViewsHandler
	apiKey  string
}

func NewViewsRoutes(handler *handlers.ViewsHandler, apiKey string) *ViewsRoutes {
	return &ViewsRoutes{
		handler: handler,
		apiKey:  apiKey,
	}
}

// RegisterRoutes registers all saved view routes
func (r *ViewsRoutes) RegisterRoutes(router *gin.Engine) {
	views := router.Group("/api/views")
	views.Use(middleware.NewAuthMiddleware(r.apiKey))

	views.GET("", r.handler.ListViews)
	views.POST("", r.handler.SaveView)
	views.DELETE("/:id", r.handler.DeleteView)
	views.POST("/:id/restore", r.handler.RestoreView)
}
