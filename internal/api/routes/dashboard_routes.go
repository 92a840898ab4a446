package routes

import (
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/handlers"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type DashboardRoutes struct {
	handler *handlers.DashboardHandler
	apiKey  string
}

func NewDashboardRoutes(handler *handlers.DashboardHandler, apiKey string) *DashboardRoutes {
	return &DashboardRoutes{
		handler: handler,
		apiKey:  apiKey,
	}
}

// RegisterRoutes registers all dashboard widget routes. None of them
// are response-cached: the widget list and gesture state are live
// in-memory state and must never be served stale.
func (r *DashboardRoutes) RegisterRoutes(router *gin.Engine) {
	dashboard := router.Group("/api/dashboard")
	dashboard.Use(middleware.NewAuthMiddleware(r.apiKey))

	dashboard.GET("/widgets", r.handler.ListWidgets)
	dashboard.POST("/widgets", r.handler.AddWidget)
	dashboard.DELETE("/widgets", r.handler.ClearWidgets)
	dashboard.POST("/widgets/auto-layout", r.handler.AutoLayout)

	dashboard.PATCH("/widgets/:index", r.handler.UpdateWidget)
	dashboard.DELETE("/widgets/:index", r.handler.RemoveWidget)
	dashboard.GET("/widgets/:index/content", r.handler.WidgetContent)
	dashboard.POST("/widgets/:index/items", r.handler.NextItems)
	dashboard.GET("/widgets/:index/open-all", r.handler.OpenAll)

	dashboard.POST("/gesture", r.handler.Gesture)
}
