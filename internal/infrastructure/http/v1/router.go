// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"filterbar/internal/domain/views"
	"filterbar/internal/i18n"
	"filterbar/internal/infrastructure/http/v1/handlers"
	"filterbar/internal/infrastructure/http/v1/middleware"
	"filterbar/internal/infrastructure/storage/postgres"
	"filterbar/internal/registry"
	"filterbar/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks).
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation on saved-view routes.
	JWTValidator middleware.JWTValidator

	// Registry stores the filter catalogs.
	Registry *registry.Registry

	// Bundle holds the translation catalogs.
	Bundle *i18n.Bundle

	// ViewService provides saved filter views.
	ViewService *views.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	catalogHandler := handlers.NewCatalogHandler(cfg.Registry)
	appliedHandler := handlers.NewAppliedHandler(cfg.Registry, cfg.Bundle)
	viewHandler := handlers.NewViewHandler(cfg.ViewService, cfg.Registry, cfg.Bundle)

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		// Catalog and reconciliation endpoints are stateless and public:
		// the client owns its applied-filter set.
		catalogs := apiV1.Group("/catalogs")
		{
			catalogs.GET("", catalogHandler.List)
			catalogs.GET("/:resource", catalogHandler.Get)
			catalogs.POST("/:resource/applied", appliedHandler.Add)
			catalogs.POST("/:resource/applied/remove", appliedHandler.Remove)
			catalogs.POST("/:resource/labels", appliedHandler.Labels)
		}

		// Shared views are reachable by token alone.
		apiV1.GET("/shared/:token", viewHandler.Open)

		// Saved views belong to users.
		viewRoutes := apiV1.Group("/views")
		viewRoutes.Use(middleware.Auth(cfg.JWTValidator))
		{
			viewRoutes.GET("", viewHandler.List)
			viewRoutes.POST("", viewHandler.Create)
			viewRoutes.GET("/:id", viewHandler.Get)
			viewRoutes.PATCH("/:id", viewHandler.Rename)
			viewRoutes.DELETE("/:id", viewHandler.Delete)
			viewRoutes.POST("/:id/share", viewHandler.Share)
		}
	}

	return router
}
