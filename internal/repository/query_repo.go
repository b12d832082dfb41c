// filepath: internal/repository/query_repo.go
package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/models"
)

// ListRecipeAggregates returns all recipes as assembled aggregates, newest
// first. With a category filter, recipes having at least one association with
// that category remain (membership filter, not all-match). Images and
// categories are loaded in two batched queries rather than per row.
func (s *Repository) ListRecipeAggregates(categoryID *int64) ([]models.RecipeAggregate, error) {
	q := s.Builder.
		Select("id", "title", "url", "provider", "is_today_menu", "today_menu_set_at", "created_at", "updated_at").
		From("recipes").
		OrderBy("created_at DESC")

	if categoryID != nil {
		q = q.Where("id IN (SELECT recipe_id FROM recipe_categories WHERE category_id = ?)", *categoryID)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("Generated SQL for ListRecipeAggregates: %s", query)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]models.RecipeAggregate, 0)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(recipes) == 0 {
		return recipes, nil
	}

	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}

	imagesByRecipe, err := s.loadImages(ids)
	if err != nil {
		return nil, err
	}
	categoriesByRecipe, err := s.loadCategories(ids)
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		recipes[i].ImageURLs = imagesByRecipe[recipes[i].ID]
		recipes[i].Categories = categoriesByRecipe[recipes[i].ID]
		if recipes[i].ImageURLs == nil {
			recipes[i].ImageURLs = []string{}
		}
		if recipes[i].Categories == nil {
			recipes[i].Categories = []models.CategoryRef{}
		}
	}

	return recipes, nil
}

// GetRecipeAggregate assembles a single recipe with its ordered images and
// its categories ordered by id.
func (s *Repository) GetRecipeAggregate(id string) (*models.RecipeAggregate, error) {
	query, args, err := s.Builder.
		Select("id", "title", "url", "provider", "is_today_menu", "today_menu_set_at", "created_at", "updated_at").
		From("recipes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	recipe, err := scanRecipe(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	imagesByRecipe, err := s.loadImages([]string{id})
	if err != nil {
		return nil, err
	}
	categoriesByRecipe, err := s.loadCategories([]string{id})
	if err != nil {
		return nil, err
	}

	recipe.ImageURLs = imagesByRecipe[id]
	recipe.Categories = categoriesByRecipe[id]
	if recipe.ImageURLs == nil {
		recipe.ImageURLs = []string{}
	}
	if recipe.Categories == nil {
		recipe.Categories = []models.CategoryRef{}
	}

	return recipe, nil
}

// loadImages returns each recipe's image URLs ordered by display_order with
// insertion id as the tie breaker.
func (s *Repository) loadImages(recipeIDs []string) (map[string][]string, error) {
	query, args, err := s.Builder.
		Select("recipe_id", "image_url").
		From("recipe_images").
		Where(sq.Eq{"recipe_id": recipeIDs}).
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make(map[string][]string)
	for rows.Next() {
		var recipeID, imageURL string
		if err := rows.Scan(&recipeID, &imageURL); err != nil {
			return nil, err
		}
		images[recipeID] = append(images[recipeID], imageURL)
	}
	return images, rows.Err()
}

// loadCategories returns each recipe's categories ordered by category id.
func (s *Repository) loadCategories(recipeIDs []string) (map[string][]models.CategoryRef, error) {
	query, args, err := s.Builder.
		Select("rc.recipe_id", "c.id", "c.name").
		From("recipe_categories rc").
		Join("categories c ON c.id = rc.category_id").
		Where(sq.Eq{"rc.recipe_id": recipeIDs}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make(map[string][]models.CategoryRef)
	for rows.Next() {
		var recipeID string
		var ref models.CategoryRef
		if err := rows.Scan(&recipeID, &ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		categories[recipeID] = append(categories[recipeID], ref)
	}
	return categories, rows.Err()
}

func scanRecipe(rows *sql.Rows) (*models.RecipeAggregate, error) {
	var r models.RecipeAggregate
	var setAt sql.NullTime
	if err := rows.Scan(
		&r.ID, &r.Title, &r.URL, &r.Provider,
		&r.IsTodayMenu, &setAt, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if setAt.Valid {
		t := setAt.Time
		r.TodayMenuSetAt = &t
	}
	return &r, nil
}
