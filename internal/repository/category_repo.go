// filepath: internal/repository/category_repo.go
package repository

import (
	"database/sql"

	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/models"
)

// GetCategories returns all categories ordered by id ascending. The result
// is served from the read cache when present; every category write flushes
// the cached list.
func (s *Repository) GetCategories() ([]models.Category, error) {
	if cached, found := s.Cache.Get(categoryListCacheKey); found {
		return cached.([]models.Category), nil
	}

	query, args, err := s.Builder.
		Select("id", "name", "created_at").
		From("categories").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.Cache.SetDefault(categoryListCacheKey, categories)
	return categories, nil
}

// CreateCategory inserts a new category and returns the stored row.
// A duplicate name surfaces as the driver's unique-constraint error.
func (s *Repository) CreateCategory(name string) (*models.Category, error) {
	res, err := s.DB.Exec("INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	s.Cache.Delete(categoryListCacheKey)
	return s.getCategory(id)
}

// RenameCategory updates a category's name. Renaming never rewrites any
// recipe row: category names are always read by join, never stored twice.
func (s *Repository) RenameCategory(id int64, name string) (*models.Category, error) {
	res, err := s.DB.Exec("UPDATE categories SET name = ? WHERE id = ?", name, id)
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

	s.Cache.Delete(categoryListCacheKey)
	return s.getCategory(id)
}

// DeleteCategory removes a category together with all of its recipe
// associations. The join rows are deleted explicitly, in the same
// transaction, so correctness never depends on engine-level cascades.
// Recipes themselves are never deleted here, even if one ends up with
// zero categories.
func (s *Repository) DeleteCategory(id int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recipe_categories WHERE category_id = ?", id); err != nil {
		return err
	}

	res, err := tx.Exec("DELETE FROM categories WHERE id = ?", id)
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

	s.Cache.Delete(categoryListCacheKey)
	logging.Log.Debugf("Category %d deleted with its recipe associations", id)
	return nil
}

func (s *Repository) getCategory(id int64) (*models.Category, error) {
	var c models.Category
	err := s.DB.QueryRow(
		"SELECT id, name, created_at FROM categories WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
