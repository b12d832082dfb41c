// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"github.com/shinohara-jil/recipe-app/internal/models"
)

// CategoryService defines the interface for the category taxonomy.
type CategoryService interface {
	GetCategories() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
	RenameCategory(id int64, name string) (*models.Category, error)
	DeleteCategory(id int64) error
}

// RecipeService defines the interface for the recipe aggregate store and the
// today's-menu singleton.
type RecipeService interface {
	ListRecipes(categoryID *int64) ([]models.RecipeAggregate, error)
	CreateRecipe(p models.RecipeCreatePayload) (*models.RecipeAggregate, error)
	UpdateRecipe(id string, p models.RecipeUpdatePayload) (*models.RecipeAggregate, error)
	DeleteRecipe(id string) error
	SetTodayMenu(id string) (*models.TodayMenu, error)
	ClearTodayMenu(id string) (*models.TodayMenu, error)
}

// UploadService defines the interface for validated image uploads.
type UploadService interface {
	Upload(ctx context.Context, data []byte, contentType, filename string) (string, error)
	MaxUploadSizeBytes() int64
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}
