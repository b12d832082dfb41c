// filepath: internal/api/handlers/recipe_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/models"
	"github.com/shinohara-jil/recipe-app/internal/services"
)

// @Summary List recipes
// @Description Retrieves recipe aggregates ordered by creation time descending. With categoryId, only recipes holding at least one association with that category are returned. Served from the built-in fixture dataset when no database is configured.
// @Tags recipe
// @Produce  json
// @Param   categoryId  query  int  false  "Filter by category membership"
// @Success 200 {array} models.RecipeAggregate
// @Failure 400 {object} ErrorResponse "Invalid categoryId"
// @Failure 500 {object} ErrorResponse "Failed to retrieve recipes"
// @Router /recipes [get]
func (h *Handlers) GetRecipes(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid categoryId parameter")
			return
		}
		categoryID = &id
	}

	recipes, err := h.Recipe.ListRecipes(categoryID)
	if err != nil {
		logging.Log.Errorf("Failed to fetch recipes: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}

	if recipes == nil {
		recipes = []models.RecipeAggregate{}
	}
	respondWithJSON(w, http.StatusOK, recipes)
}

// @Summary Create a recipe
// @Description Creates a recipe together with its ordered images and its category associations. Title, url and at least one category are required.
// @Tags recipe
// @Accept  json
// @Produce  json
// @Param   recipe  body  models.RecipeCreatePayload  true  "Recipe"
// @Success 201 {object} models.RecipeAggregate
// @Failure 400 {object} ErrorResponse "Missing title, url or categoryIds"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /recipes [post]
func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var payload models.RecipeCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	recipe, err := h.Recipe.CreateRecipe(payload)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "Title, URL, and at least one category are required")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to create recipe: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to create recipe")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, recipe)
}

// @Summary Update a recipe
// @Description Updates a recipe and replaces its images and category associations wholesale. Title and at least one category are required; the url is optional. An empty imageUrls removes every image.
// @Tags recipe
// @Accept  json
// @Produce  json
// @Param   id      path  string                      true  "Recipe ID"
// @Param   recipe  body  models.RecipeUpdatePayload  true  "Recipe"
// @Success 200 {object} models.RecipeAggregate
// @Failure 400 {object} ErrorResponse "Missing title or categoryIds"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /recipes/{id} [put]
func (h *Handlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload models.RecipeUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	recipe, err := h.Recipe.UpdateRecipe(id, payload)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "Title and at least one category are required")
		} else if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Recipe not found")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to update recipe %s: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to update recipe")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, recipe)
}

// @Summary Delete a recipe
// @Description Deletes a recipe together with its images and category associations.
// @Tags recipe
// @Produce  json
// @Param   id  path  string  true  "Recipe ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /recipes/{id} [delete]
func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Recipe.DeleteRecipe(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Recipe not found")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to delete recipe %s: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to delete recipe")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, DeleteResponse{Success: true, ID: id})
}

// @Summary Set today's menu
// @Description Flags the recipe as today's menu. At most one recipe holds the flag: the previous holder is cleared in the same transaction.
// @Tags recipe
// @Produce  json
// @Param   id  path  string  true  "Recipe ID"
// @Success 200 {object} models.TodayMenu
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /recipes/{id}/today-menu [put]
func (h *Handlers) SetTodayMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	menu, err := h.Recipe.SetTodayMenu(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Recipe not found")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to set today menu on %s: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to set today menu")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, menu)
}

// @Summary Clear today's menu
// @Description Unconditionally clears the today's-menu flag on the recipe.
// @Tags recipe
// @Produce  json
// @Param   id  path  string  true  "Recipe ID"
// @Success 200 {object} models.TodayMenu
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /recipes/{id}/today-menu [delete]
func (h *Handlers) ClearTodayMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	menu, err := h.Recipe.ClearTodayMenu(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Recipe not found")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to clear today menu on %s: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to clear today menu")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, menu)
}
