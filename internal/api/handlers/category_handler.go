// filepath: internal/api/handlers/category_handler.go
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

// @Summary List categories
// @Description Retrieves all categories ordered by id. Served from the built-in fixture dataset when no database is configured.
// @Tags category
// @Produce  json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse "Failed to retrieve categories"
// @Router /categories [get]
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Category.GetCategories()
	if err != nil {
		logging.Log.Errorf("Failed to fetch categories: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	// Ensure an empty array `[]` is returned instead of `null`.
	if categories == nil {
		categories = []models.Category{}
	}
	respondWithJSON(w, http.StatusOK, categories)
}

// @Summary Create a category
// @Description Creates a new category. The name is trimmed and must be unique.
// @Tags category
// @Accept  json
// @Produce  json
// @Param   category  body  models.CategoryPayload  true  "Category name"
// @Success 201 {object} models.Category
// @Failure 400 {object} ErrorResponse "Missing or blank name"
// @Failure 409 {object} ErrorResponse "Category already exists"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /categories [post]
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload models.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := h.Category.CreateCategory(payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "Category name is required")
		} else if errors.Is(err, services.ErrConflict) {
			respondWithError(w, http.StatusConflict, "Category already exists")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to create category: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to create category")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, category)
}

// @Summary Rename a category
// @Description Renames an existing category. Recipes pick the new name up through the join; nothing else is rewritten.
// @Tags category
// @Accept  json
// @Produce  json
// @Param   id        path  int                     true  "Category ID"
// @Param   category  body  models.CategoryPayload  true  "New name"
// @Success 200 {object} models.Category
// @Failure 400 {object} ErrorResponse "Missing or blank name"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category name already exists"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /categories/{id} [put]
func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var payload models.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := h.Category.RenameCategory(id, payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "Category name is required")
		} else if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Category not found")
		} else if errors.Is(err, services.ErrConflict) {
			respondWithError(w, http.StatusConflict, "Category name already exists")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to update category %d: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to update category")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, category)
}

// @Summary Delete a category
// @Description Deletes a category and removes it from every recipe that references it. Recipes themselves are never deleted.
// @Tags category
// @Produce  json
// @Param   id  path  int  true  "Category ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 503 {object} ErrorResponse "Database not configured"
// @Router /categories/{id} [delete]
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.Category.DeleteCategory(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Category not found")
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Database not configured")
		} else {
			logging.Log.Errorf("Failed to delete category %d: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, DeleteResponse{Success: true, ID: id})
}
