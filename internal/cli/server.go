// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shinohara-jil/recipe-app/internal/api"
	"github.com/shinohara-jil/recipe-app/internal/api/handlers"
	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/repository"
	"github.com/shinohara-jil/recipe-app/internal/services"
	"github.com/shinohara-jil/recipe-app/internal/storage"
)

// runServer wires the repository, services and HTTP layer together and
// serves until interrupted.
func runServer() error {
	var repo *repository.Repository
	if cfg.DatabaseConfigured() {
		var err error
		repo, err = repository.NewRepository(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize repository: %w", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchemaBootstrapped(); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	} else {
		logging.Log.Warn("No database path configured; serving the built-in sample dataset, all writes will be rejected")
	}

	store, err := storage.NewFromConfig(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	if store == nil {
		logging.Log.Warn("No storage backend configured; image uploads will be rejected")
	}

	h := handlers.NewHandlers(
		services.NewInfoService(Version, StartTime, cfg),
		services.NewCategoryService(repo),
		services.NewRecipeService(repo),
		services.NewUploadService(store, cfg),
		cfg,
	)

	router := api.SetupRouter(h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Log.WithField("address", addr).Info("Starting RecipeHub API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logging.Log.Info("Server exited")
	return nil
}
