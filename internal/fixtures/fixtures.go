// Package fixtures holds the built-in dataset served by read endpoints when
// no database is configured. It lets the UI be developed and demoed without
// provisioning storage; writes are rejected with 503 in that mode.
package fixtures

import (
	"time"

	"github.com/shinohara-jil/recipe-app/internal/models"
)

var fixtureBase = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

// Categories returns the fixture category taxonomy, ordered by id.
func Categories() []models.Category {
	names := []string{"pickup！", "牛肉", "豚肉", "鶏肉", "その他", "ホットクック"}
	cats := make([]models.Category, 0, len(names))
	for i, name := range names {
		cats = append(cats, models.Category{
			ID:        int64(i + 1),
			Name:      name,
			CreatedAt: fixtureBase,
		})
	}
	return cats
}

// Recipes returns the fixture recipe aggregates, newest first. When a
// category filter is given, only recipes holding that category remain,
// mirroring the membership filter of the real query path.
func Recipes(categoryID *int64) []models.RecipeAggregate {
	all := []models.RecipeAggregate{
		{
			ID:    "01HV0000000000000000000001",
			Title: "定番のハンバーグ",
			URL:   "https://example.com/recipe/1",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop",
				"https://images.unsplash.com/photo-1603360946369-dc9bb6258143?w=400&h=300&fit=crop",
			},
			Categories: []models.CategoryRef{{ID: 1, Name: "pickup！"}, {ID: 2, Name: "牛肉"}},
			CreatedAt:  fixtureBase,
			UpdatedAt:  fixtureBase,
		},
		{
			ID:        "01HV0000000000000000000002",
			Title:     "豚の生姜焼き",
			URL:       "https://example.com/recipe/2",
			Provider:  models.ProviderMomo,
			ImageURLs: []string{"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop"},
			Categories: []models.CategoryRef{
				{ID: 3, Name: "豚肉"},
			},
			CreatedAt: fixtureBase.AddDate(0, 0, -1),
			UpdatedAt: fixtureBase.AddDate(0, 0, -1),
		},
		{
			ID:        "01HV0000000000000000000003",
			Title:     "ホットクックで簡単カレー",
			URL:       "https://example.com/recipe/3",
			ImageURLs: []string{},
			Categories: []models.CategoryRef{
				{ID: 1, Name: "pickup！"}, {ID: 6, Name: "ホットクック"},
			},
			CreatedAt: fixtureBase.AddDate(0, 0, -2),
			UpdatedAt: fixtureBase.AddDate(0, 0, -2),
		},
		{
			ID:        "01HV0000000000000000000004",
			Title:     "鶏の唐揚げ",
			URL:       "https://example.com/recipe/4",
			Provider:  models.ProviderHasegawaAkari,
			ImageURLs: []string{"https://images.unsplash.com/photo-1562967914-608f82629710?w=400&h=300&fit=crop"},
			Categories: []models.CategoryRef{
				{ID: 4, Name: "鶏肉"},
			},
			CreatedAt: fixtureBase.AddDate(0, 0, -3),
			UpdatedAt: fixtureBase.AddDate(0, 0, -3),
		},
		{
			ID:    "01HV0000000000000000000005",
			Title: "ホットクックで肉じゃが",
			URL:   "https://example.com/recipe/5",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400&h=300&fit=crop",
				"https://images.unsplash.com/photo-1574484284002-952d92456975?w=400&h=300&fit=crop",
			},
			Categories: []models.CategoryRef{{ID: 2, Name: "牛肉"}, {ID: 6, Name: "ホットクック"}},
			CreatedAt:  fixtureBase.AddDate(0, 0, -4),
			UpdatedAt:  fixtureBase.AddDate(0, 0, -4),
		},
		{
			ID:        "01HV0000000000000000000006",
			Title:     "アクアパッツァ",
			URL:       "https://example.com/recipe/6",
			ImageURLs: []string{"https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?w=400&h=300&fit=crop"},
			Categories: []models.CategoryRef{
				{ID: 5, Name: "その他"},
			},
			CreatedAt: fixtureBase.AddDate(0, 0, -5),
			UpdatedAt: fixtureBase.AddDate(0, 0, -5),
		},
	}

	if categoryID == nil {
		return all
	}

	filtered := make([]models.RecipeAggregate, 0, len(all))
	for _, r := range all {
		for _, c := range r.Categories {
			if c.ID == *categoryID {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}
