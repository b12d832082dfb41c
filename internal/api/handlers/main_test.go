// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shinohara-jil/recipe-app/internal/config"
	"github.com/shinohara-jil/recipe-app/internal/models"
	"github.com/shinohara-jil/recipe-app/internal/services"
)

// --- MOCK INFO SERVICE ---
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}

// --- MOCK CATEGORY SERVICE ---
type MockCategoryService struct {
	mock.Mock
}

var _ services.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) GetCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}
func (m *MockCategoryService) RenameCategory(id int64, name string) (*models.Category, error) {
	args := m.Called(id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// --- MOCK RECIPE SERVICE ---
type MockRecipeService struct {
	mock.Mock
}

var _ services.RecipeService = (*MockRecipeService)(nil)

func (m *MockRecipeService) ListRecipes(categoryID *int64) ([]models.RecipeAggregate, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeAggregate), args.Error(1)
}
func (m *MockRecipeService) CreateRecipe(p models.RecipeCreatePayload) (*models.RecipeAggregate, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeAggregate), args.Error(1)
}
func (m *MockRecipeService) UpdateRecipe(id string, p models.RecipeUpdatePayload) (*models.RecipeAggregate, error) {
	args := m.Called(id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeAggregate), args.Error(1)
}
func (m *MockRecipeService) DeleteRecipe(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockRecipeService) SetTodayMenu(id string) (*models.TodayMenu, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TodayMenu), args.Error(1)
}
func (m *MockRecipeService) ClearTodayMenu(id string) (*models.TodayMenu, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TodayMenu), args.Error(1)
}

// --- MOCK UPLOAD SERVICE ---
type MockUploadService struct {
	mock.Mock
}

var _ services.UploadService = (*MockUploadService)(nil)

func (m *MockUploadService) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	args := m.Called(ctx, data, contentType, filename)
	return args.String(0), args.Error(1)
}
func (m *MockUploadService) MaxUploadSizeBytes() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// newTestHandlers builds a Handlers value wired to fresh mocks.
func newTestHandlers() (*Handlers, *MockCategoryService, *MockRecipeService, *MockUploadService) {
	category := new(MockCategoryService)
	recipe := new(MockRecipeService)
	upload := new(MockUploadService)
	h := NewHandlers(new(MockInfoService), category, recipe, upload, &config.Config{})
	return h, category, recipe, upload
}
