// Package main is the entry point for the filterbar API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filterbar/internal/config"
	"filterbar/internal/domain/auth"
	"filterbar/internal/domain/views"
	"filterbar/internal/i18n"
	v1 "filterbar/internal/infrastructure/http/v1"
	"filterbar/internal/infrastructure/storage/postgres"
	"filterbar/internal/registry"
	"filterbar/pkg/logger"
)

func main() {
	cfg, err := config.Load(getEnv("CONFIG_PATH", "."))
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting filterbar server")

	// --- Database connection ---
	if cfg.DatabaseURL == "" {
		log.Fatal("database.url (FILTERBAR_DATABASE_URL) is required")
	}
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Filter catalogs ---
	reg := registry.NewRegistry()
	if err := reg.LoadDir(cfg.CatalogDir); err != nil {
		log.Fatalw("failed to load filter catalogs", "dir", cfg.CatalogDir, "error", err)
	}
	log.Infow("filter catalogs loaded", "count", len(reg.List()))

	// --- Translation bundles ---
	bundle := i18n.DefaultBundle()
	if _, err := os.Stat(cfg.LocaleDir); err == nil {
		if err := bundle.LoadDir(cfg.LocaleDir); err != nil {
			log.Fatalw("failed to load locale catalogs", "dir", cfg.LocaleDir, "error", err)
		}
	}

	// --- JWT Service ---
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "change-me-in-production"
		log.Warn("jwt.secret not set, using insecure default")
	}
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Saved views ---
	viewRepo, err := postgres.NewViewRepo(pool)
	if err != nil {
		log.Fatalw("failed to create view repository", "error", err)
	}
	viewService := views.NewService(viewRepo, reg, cfg.ShareTTL)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:         pool,
		Logger:       log,
		JWTValidator: jwtService,
		Registry:     reg,
		Bundle:       bundle,
		ViewService:  viewService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
