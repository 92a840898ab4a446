package routes

import (
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/handlers"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type BookmarkRoutes struct {
	handler *handlers.BookmarkHandler
	apiKey  string
}

func NewBookmarkRoutes(handler *handlers.BookmarkHandler, apiKey string) *BookmarkRoutes {
	return &BookmarkRoutes{
		handler: handler,
		apiKey:  apiKey,
	}
}

// RegisterRoutes registers all bookmark and folder routes
func (r *BookmarkRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	auth := middleware.NewAuthMiddleware(r.apiKey)

	bookmarks := router.Group("/api/bookmarks")
	bookmarks.Use(auth)

	bookmarks.GET("", cache.CacheResponse(), r.handler.ListBookmarks)
	bookmarks.POST("", cache.CacheInvalidate("/api/bookmarks*", "/api/analytics*"), r.handler.CreateBookmark)
	bookmarks.GET("/:id", cache.CacheResponse(), r.handler.GetBookmark)
	bookmarks.PATCH("/:id", cache.CacheInvalidate("/api/bookmarks*", "/api/analytics*"), r.handler.UpdateBookmark)
	bookmarks.DELETE("/:id", cache.CacheInvalidate("/api/bookmarks*", "/api/analytics*"), r.handler.DeleteBookmark)
	bookmarks.POST("/:id/click", cache.CacheInvalidate("/api/bookmarks*", "/api/analytics*"), r.handler.TrackClick)

	folders := router.Group("/api/folders")
	folders.Use(auth)

	folders.GET("", cache.CacheResponse(), r.handler.ListFolders)
	folders.POST("", cache.CacheInvalidate("/api/folders*"), r.handler.CreateFolder)
	folders.GET("/:id", cache.CacheResponse(), r.handler.GetFolder)
	folders.DELETE("/:id", cache.CacheInvalidate("/api/folders*"), r.handler.DeleteFolder)
}
