// filepath: internal/api/handlers/main.go
package handlers

import (
	"github.com/shinohara-jil/recipe-app/internal/config"
	"github.com/shinohara-jil/recipe-app/internal/services"
)

// Handlers holds the shared dependencies for the API handlers. It depends on
// the service interfaces, not the concrete structs, so tests can inject
// mocks.
type Handlers struct {
	Info     services.InfoService
	Category services.CategoryService
	Recipe   services.RecipeService
	Upload   services.UploadService

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	category services.CategoryService,
	recipe services.RecipeService,
	upload services.UploadService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:     info,
		Category: category,
		Recipe:   recipe,
		Upload:   upload,
		Cfg:      cfg,
	}
}
