// filepath: internal/services/recipe_service.go
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

var _ RecipeService = (*recipeService)(nil)

// recipeService implements the business logic for recipe aggregates and the
// today's-menu singleton. A nil repository means "database not configured":
// reads serve the fixture dataset, writes fail with ErrNotConfigured.
type recipeService struct {
	Repo *repository.Repository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(repo *repository.Repository) *recipeService {
	return &recipeService{Repo: repo}
}

// ListRecipes returns recipe aggregates ordered by creation time descending,
// optionally restricted to recipes holding the given category.
func (s *recipeService) ListRecipes(categoryID *int64) ([]models.RecipeAggregate, error) {
	if s.Repo == nil {
		return fixtures.Recipes(categoryID), nil
	}
	return s.Repo.ListRecipeAggregates(categoryID)
}

// CreateRecipe validates and persists a new recipe aggregate. Creation
// requires title, url and at least one category.
func (s *recipeService) CreateRecipe(p models.RecipeCreatePayload) (*models.RecipeAggregate, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.CategoryIDs = dedupeIDs(p.CategoryIDs)

	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.URL == "" {
		missing = append(missing, "url")
	}
	if len(p.CategoryIDs) == 0 {
		missing = append(missing, "categoryIds")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required field(s): %s", ErrValidation, strings.Join(missing, ", "))
	}

	if s.Repo == nil {
		return nil, ErrNotConfigured
	}

	aggregate, err := s.Repo.CreateRecipeAggregate(p)
	if err != nil {
		logging.Log.Errorf("RecipeService: failed to create recipe %q: %v", p.Title, err)
		return nil, err
	}

	logging.Log.Infof("Recipe created: %q (%s)", aggregate.Title, aggregate.ID)
	return aggregate, nil
}

// UpdateRecipe validates and applies a replace-all update to an existing
// recipe aggregate. Unlike creation, the url is optional here.
func (s *recipeService) UpdateRecipe(id string, p models.RecipeUpdatePayload) (*models.RecipeAggregate, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.CategoryIDs = dedupeIDs(p.CategoryIDs)

	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if len(p.CategoryIDs) == 0 {
		missing = append(missing, "categoryIds")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required field(s): %s", ErrValidation, strings.Join(missing, ", "))
	}

	if s.Repo == nil {
		return nil, ErrNotConfigured
	}

	aggregate, err := s.Repo.UpdateRecipeAggregate(id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, id)
		}
		logging.Log.Errorf("RecipeService: failed to update recipe %s: %v", id, err)
		return nil, err
	}

	return aggregate, nil
}

// DeleteRecipe removes a recipe together with its images and category
// associations.
func (s *recipeService) DeleteRecipe(id string) error {
	if s.Repo == nil {
		return ErrNotConfigured
	}

	if err := s.Repo.DeleteRecipe(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: recipe %s", ErrNotFound, id)
		}
		logging.Log.Errorf("RecipeService: failed to delete recipe %s: %v", id, err)
		return err
	}

	logging.Log.Infof("Recipe deleted: %s", id)
	return nil
}

// SetTodayMenu flags the given recipe as today's menu, clearing whichever
// recipe held the flag before.
func (s *recipeService) SetTodayMenu(id string) (*models.TodayMenu, error) {
	if s.Repo == nil {
		return nil, ErrNotConfigured
	}

	menu, err := s.Repo.SetTodayMenu(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, id)
		}
		logging.Log.Errorf("RecipeService: failed to set today menu on %s: %v", id, err)
		return nil, err
	}

	logging.Log.Infof("Today's menu set to recipe %s", id)
	return menu, nil
}

// ClearTodayMenu clears the flag on the given recipe.
func (s *recipeService) ClearTodayMenu(id string) (*models.TodayMenu, error) {
	if s.Repo == nil {
		return nil, ErrNotConfigured
	}

	menu, err := s.Repo.ClearTodayMenu(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, id)
		}
		logging.Log.Errorf("RecipeService: failed to clear today menu on %s: %v", id, err)
		return nil, err
	}

	return menu, nil
}

// dedupeIDs collapses duplicate category ids while keeping first-seen order.
// The request field is a set; clients occasionally send repeats.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
