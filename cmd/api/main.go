package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/handlers"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/middleware"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/api/routes"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/analytics"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/dashboard"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/events"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/settings"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/views"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/persistence/postgres/connection"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/persistence/postgres/migrations"
	"github.com/gogogadgetscott/AnchorMarks-sub000/pkg/config"
	"github.com/gogogadgetscott/AnchorMarks-sub000/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     append(cfg.CORS.AllowedHeaders, "Content-Type", middleware.APIKeyHeader),
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize Redis
	redisConfig := cache.NewConfigFromEnv(cfg)
	redisClient, err := cache.NewRedisClient(redisConfig)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	bookmarkRepo := bookmark.NewRepository(db)
	settingsRepo := settings.NewRepository(db)
	viewsRepo := views.NewRepository(db)

	// Initialize services
	bookmarkService := bookmark.NewService(bookmarkRepo, redisClient, log.Logger)
	settingsService := settings.NewService(settingsRepo, redisClient, log.Logger)
	analyticsService := analytics.NewService(bookmarkService, redisClient, log.Logger)
	viewsService := views.NewService(viewsRepo, settingsService, redisClient, log.Logger)

	// The dashboard engine hydrates its widget store from the settings
	// document at construction.
	dashboardService, err := dashboard.NewService(bookmarkService, settingsService, redisClient, log.Logger)
	if err != nil {
		log.Fatal("Failed to initialize dashboard engine", zap.Error(err))
	}

	// Invalidate bookmark-derived caches on dashboard events
	go func() {
		ctx := context.Background()
		err := redisClient.SubscribeToDashboardEvents(ctx, func(event *events.DashboardEvent) error {
			if event.EventType == events.DashboardEventCacheInvalidate {
				analyticsService.InvalidateCache(ctx)
			}
			return nil
		})
		if err != nil {
			log.Error("Dashboard event listener error", zap.Error(err))
		}
	}()

	// Initialize handlers
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, dashboardService, log.Logger)
	viewsHandler := handlers.NewViewsHandler(viewsService, dashboardService, log.Logger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log.Logger)

	// Response cache for read-heavy endpoints
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, "anchormarks", 5*time.Minute)

	// Register routes
	routes.SetupHealthRoutes(router, redisClient)
	routes.NewBookmarkRoutes(bookmarkHandler, cfg.Auth.APIKey).RegisterRoutes(router, cacheMiddleware)
	routes.NewSettingsRoutes(settingsHandler, cfg.Auth.APIKey).RegisterRoutes(router)
	routes.NewViewsRoutes(viewsHandler, cfg.Auth.APIKey).RegisterRoutes(router)
	routes.NewAnalyticsRoutes(analyticsHandler, cfg.Auth.APIKey).RegisterRoutes(router, cacheMiddleware)
	routes.NewDashboardRoutes(dashboardHandler, cfg.Auth.APIKey).RegisterRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")

	// Push any pending widget writes out before the process exits
	if err := dashboardService.Flush(ctx); err != nil {
		log.Error("Failed to flush dashboard state", zap.Error(err))
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
