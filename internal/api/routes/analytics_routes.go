package routes

import (
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/handlers"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type AnalyticsRoutes struct {
	handler *handlers.AnalyticsHandler
	apiKey  string
}

func NewAnalyticsRoutes(handler *handlers.AnalyticsHandler, apiKey string) *AnalyticsRoutes {
	return &AnalyticsRoutes{
		handler: handler,
		apiKey:  apiKey,
	}
}

// RegisterRoutes registers the tag analytics routes
func (r *AnalyticsRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	analytics := router.Group("/api/analytics")
	analytics.Use(middleware.NewAuthMiddleware(r.apiKey))

	analytics.GET("/tags", cache.CacheResponse(), r.handler.GetTagAnalytics)
}
