// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"filterbar/internal/core/apperror"
	appctx "filterbar/internal/core/context"
	"filterbar/internal/domain/auth"
	"filterbar/internal/domain/filters"
	"filterbar/internal/domain/views"
	"filterbar/internal/infrastructure/storage/postgres"
	"filterbar/internal/registry"
	"filterbar/pkg/logger"
)

const demoUserID = "demo"

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("FILTERBAR_DATABASE_URL")
	if dbURL == "" {
		log.Fatal("FILTERBAR_DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("connected to database")

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	log.Info("schema ensured")

	catalogDir := getEnv("FILTERBAR_CATALOG_DIR", "configs/catalogs")
	reg := registry.NewRegistry()
	if err := reg.LoadDir(catalogDir); err != nil {
		log.Fatalw("failed to load filter catalogs", "dir", catalogDir, "error", err)
	}

	repo, err := postgres.NewViewRepo(pool)
	if err != nil {
		log.Fatalw("failed to create view repository", "error", err)
	}
	service := views.NewService(repo, reg, 0)

	// Seed a demo view per catalog so the UI has something to show.
	seedCtx := appctx.WithUser(ctx, &appctx.UserContext{UserID: demoUserID})
	for _, list := range reg.List() {
		set := filters.Set{}
		if len(list.Filters) > 0 {
			def := list.Filters[0]
			if def.Kind == filters.KindSelect && len(def.Options) > 0 {
				set = set.Add(filters.Applied{Key: def.Key, Value: def.Options[0].Value()})
			}
		}

		_, err := service.Create(seedCtx, list.Resource, "All "+list.Resource, set)
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeDuplicate {
				log.Infow("demo view already exists", "resource", list.Resource)
				continue
			}
			log.Fatalw("failed to seed demo view", "resource", list.Resource, "error", err)
		}
		log.Infow("seeded demo view", "resource", list.Resource)
	}

	// Print a demo token if a secret is configured.
	if secret := os.Getenv("FILTERBAR_JWT_SECRET"); secret != "" {
		jwtService := auth.NewJWTService(auth.DefaultJWTConfig(secret))
		token, expiresAt, err := jwtService.GenerateAccessToken(demoUserID, "demo@example.com", false)
		if err != nil {
			log.Fatalw("failed to generate demo token", "error", err)
		}
		fmt.Printf("demo access token (expires %s):\n%s\n", expiresAt.Format("15:04:05"), token)
	}

	log.Info("seeding complete")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
