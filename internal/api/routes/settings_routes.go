package routes

import (
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/handlers"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type SettingsRoutes struct {
	handler *handlers.SettingsHandler
	apiKey  string
}

func NewSettingsRoutes(handler *handlers.SettingsHandler, apiKey string) *SettingsRoutes {
	return &SettingsRoutes{
		handler: handler,
		apiKey:  apiKey,
	}
}

// RegisterRoutes registers the settings document routes. The document
// is read fresh on every GET; the dashboard engine depends on it being
// current.
func (r *SettingsRoutes) RegisterRoutes(router *gin.Engine) {
	settings := router.Group("/api/settings")
	settings.Use(middleware.NewAuthMiddleware(r.apiKey))

	settings.GET("", r.handler.GetSettings)
	settings.PUT("", r.handler.UpdateSettings)
}
