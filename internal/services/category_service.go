// filepath: internal/services/category_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shinohara-jil/recipe-app/internal/fixtures"
	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/models"
	"github.com/shinohara-jil/recipe-app/internal/repository"
)

var _ CategoryService = (*categoryService)(nil)

// categoryService implements the business logic for the category taxonomy.
// A nil repository means "database not configured": reads serve the fixture
// dataset, writes fail with ErrNotConfigured.
type categoryService struct {
	Repo *repository.Repository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo *repository.Repository) *categoryService {
	return &categoryService{Repo: repo}
}

// GetCategories returns all categories ordered by id.
func (s *categoryService) GetCategories() ([]models.Category, error) {
	if s.Repo == nil {
		return fixtures.Categories(), nil
	}
	return s.Repo.GetCategories()
}

// CreateCategory validates and stores a new category.
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if s.Repo == nil {
		return nil, ErrNotConfigured
	}

	category, err := s.Repo.CreateCategory(name)
	if err != nil {
		if repository.IsUniqueConstraintErr(err) {
			return nil, fmt.Errorf("%w: category already exists", ErrConflict)
		}
		logging.Log.Errorf("CategoryService: failed to create category %q: %v", name, err)
		return nil, err
	}

	logging.Log.Infof("Category created: %q (id %d)", category.Name, category.ID)
	return category, nil
}

// RenameCategory validates and renames an existing category. The rename is a
// pure field update; recipes pick the new name up through the join.
func (s *categoryService) RenameCategory(id int64, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if s.Repo == nil {
		return nil, ErrNotConfigured
	}

	category, err := s.Repo.RenameCategory(id, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		if repository.IsUniqueConstraintErr(err) {
			return nil, fmt.Errorf("%w: category name already exists", ErrConflict)
		}
		logging.Log.Errorf("CategoryService: failed to rename category %d: %v", id, err)
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category and its recipe associations. Recipes are
// never deleted, even if one ends up without categories: the one-category
// minimum is enforced only on recipe writes, not retroactively.
func (s *categoryService) DeleteCategory(id int64) error {
	if s.Repo == nil {
		return ErrNotConfigured
	}

	if err := s.Repo.DeleteCategory(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		logging.Log.Errorf("CategoryService: failed to delete category %d: %v", id, err)
		return err
	}

	logging.Log.Infof("Category deleted: %d", id)
	return nil
}
