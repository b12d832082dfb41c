// filepath: internal/repository/recipe_repo.go
package repository

import (
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/models"
)

// CreateRecipeAggregate inserts a recipe together with its ordered images and
// its category associations as one transaction, then returns the assembled
// aggregate. display_order mirrors the position in the input sequence.
func (s *Repository) CreateRecipeAggregate(p models.RecipeCreatePayload) (*models.RecipeAggregate, error) {
	id := ulid.Make().String()
	now := time.Now().UTC()

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO recipes (id, title, url, provider, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, p.Title, p.URL, p.Provider, now, now,
	)
	if err != nil {
		return nil, err
	}

	if err := insertRecipeImages(tx, id, p.ImageURLs); err != nil {
		return nil, err
	}
	if err := insertRecipeCategories(tx, id, p.CategoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logging.Log.Debugf("Recipe created: %s (%d images, %d categories)", id, len(p.ImageURLs), len(p.CategoryIDs))
	return s.GetRecipeAggregate(id)
}

// UpdateRecipeAggregate updates the recipe row and replaces its category
// associations and images wholesale, all inside one transaction. Replace-all
// keeps the sync free of diff-merge edge cases; an empty image sequence
// leaves the recipe with zero images.
func (s *Repository) UpdateRecipeAggregate(id string, p models.RecipeUpdatePayload) (*models.RecipeAggregate, error) {
	now := time.Now().UTC()

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE recipes
		SET title = ?, url = ?, provider = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.URL, p.Provider, now, id,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}

	if _, err := tx.Exec("DELETE FROM recipe_categories WHERE recipe_id = ?", id); err != nil {
		return nil, err
	}
	if err := insertRecipeCategories(tx, id, p.CategoryIDs); err != nil {
		return nil, err
	}

	if _, err := tx.Exec("DELETE FROM recipe_images WHERE recipe_id = ?", id); err != nil {
		return nil, err
	}
	if err := insertRecipeImages(tx, id, p.ImageURLs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.GetRecipeAggregate(id)
}

// DeleteRecipe removes a recipe and its dependents. Join rows and images are
// deleted before the parent row, inside the same transaction, following the
// same explicit-cascade discipline as category deletion.
func (s *Repository) DeleteRecipe(id string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recipe_categories WHERE recipe_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM recipe_images WHERE recipe_id = ?", id); err != nil {
		return err
	}

	res, err := tx.Exec("DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logging.Log.Debugf("Recipe deleted: %s", id)
	return nil
}

// SetTodayMenu flags a recipe as today's menu. The currently flagged recipe
// (if any) is cleared in the same transaction, so no committed state ever
// holds two flagged recipes.
func (s *Repository) SetTodayMenu(id string) (*models.TodayMenu, error) {
	now := time.Now().UTC()

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE recipes
		SET is_today_menu = 0, today_menu_set_at = NULL
		WHERE is_today_menu = 1`)
	if err != nil {
		return nil, err
	}

	res, err := tx.Exec(`
		UPDATE recipes
		SET is_today_menu = 1, today_menu_set_at = ?
		WHERE id = ?`,
		now, id,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.TodayMenu{ID: id, IsTodayMenu: true, TodayMenuSetAt: &now}, nil
}

// ClearTodayMenu unconditionally clears the flag on the given recipe. This is
// a no-op write when the recipe was not the flagged one.
func (s *Repository) ClearTodayMenu(id string) (*models.TodayMenu, error) {
	res, err := s.DB.Exec(`
		UPDATE recipes
		SET is_today_menu = 0, today_menu_set_at = NULL
		WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}

	return &models.TodayMenu{ID: id, IsTodayMenu: false, TodayMenuSetAt: nil}, nil
}

func insertRecipeImages(tx *sql.Tx, recipeID string, imageURLs []string) error {
	for i, url := range imageURLs {
		if _, err := tx.Exec(`
			INSERT INTO recipe_images (recipe_id, image_url, display_order)
			VALUES (?, ?, ?)`,
			recipeID, url, i,
		); err != nil {
			return err
		}
	}
	return nil
}

func insertRecipeCategories(tx *sql.Tx, recipeID string, categoryIDs []int64) error {
	for _, categoryID := range categoryIDs {
		if _, err := tx.Exec(`
			INSERT INTO recipe_categories (recipe_id, category_id)
			VALUES (?, ?)`,
			recipeID, categoryID,
		); err != nil {
			return err
		}
	}
	return nil
}
