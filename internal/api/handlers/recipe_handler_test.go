// filepath: internal/api/handlers/recipe_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shinohara-jil/recipe-app/internal/models"
	"github.com/shinohara-jil/recipe-app/internal/services"
)

func TestGetRecipes(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	recipe.On("ListRecipes", (*int64)(nil)).Return([]models.RecipeAggregate{
		{
			ID:         "01HV0000000000000000000001",
			Title:      "鶏の唐揚げ",
			ImageURLs:  []string{"https://img.example.com/a.jpg"},
			Categories: []models.CategoryRef{{ID: 1, Name: "肉料理"}},
			CreatedAt:  time.Now(),
		},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/recipes", nil)
	rr := httptest.NewRecorder()

	h.GetRecipes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response []models.RecipeAggregate
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "鶏の唐揚げ", response[0].Title)
	recipe.AssertExpectations(t)
}

func TestGetRecipes_CategoryFilter(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	recipe.On("ListRecipes", mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 4
	})).Return([]models.RecipeAggregate{}, nil)

	req, _ := http.NewRequest("GET", "/api/recipes?categoryId=4", nil)
	rr := httptest.NewRecorder()

	h.GetRecipes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	recipe.AssertExpectations(t)
}

func TestGetRecipes_InvalidCategoryFilter(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()

	req, _ := http.NewRequest("GET", "/api/recipes?categoryId=abc", nil)
	rr := httptest.NewRecorder()

	h.GetRecipes(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "Invalid categoryId parameter", response.Error)
	recipe.AssertNotCalled(t, "ListRecipes", mock.Anything)
}

func TestCreateRecipe(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	payload := models.RecipeCreatePayload{
		Title:       "鶏の唐揚げ",
		URL:         "https://example.com/karaage",
		Provider:    models.ProviderHasegawaAkari,
		ImageURLs:   []string{"https://img.example.com/a.jpg"},
		CategoryIDs: []int64{1, 2},
	}
	recipe.On("CreateRecipe", payload).Return(&models.RecipeAggregate{
		ID:    "01HV0000000000000000000001",
		Title: payload.Title,
	}, nil)

	body := `{"title":"鶏の唐揚げ","url":"https://example.com/karaage","provider":"長谷川あかり","imageUrls":["https://img.example.com/a.jpg"],"categoryIds":[1,2]}`
	req, _ := http.NewRequest("POST", "/api/recipes", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.CreateRecipe(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var response models.RecipeAggregate
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "01HV0000000000000000000001", response.ID)
	recipe.AssertExpectations(t)
}

func TestCreateRecipe_Errors(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"Validation", services.ErrValidation, http.StatusBadRequest, "Title, URL, and at least one category are required"},
		{"No Database", services.ErrNotConfigured, http.StatusServiceUnavailable, "Database not configured"},
		{"Internal", assert.AnError, http.StatusInternalServerError, "Failed to create recipe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, _, recipe, _ := newTestHandlers()
			recipe.On("CreateRecipe", mock.Anything).Return(nil, tc.serviceErr)

			req, _ := http.NewRequest("POST", "/api/recipes", strings.NewReader(`{"title":"x"}`))
			rr := httptest.NewRecorder()

			h.CreateRecipe(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, tc.wantError, response.Error)
		})
	}
}

func TestUpdateRecipe(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	id := "01HV0000000000000000000001"
	payload := models.RecipeUpdatePayload{
		Title:       "改良版唐揚げ",
		CategoryIDs: []int64{1},
	}
	recipe.On("UpdateRecipe", id, payload).Return(&models.RecipeAggregate{
		ID:    id,
		Title: payload.Title,
	}, nil)

	req, _ := http.NewRequest("PUT", "/api/recipes/"+id, strings.NewReader(`{"title":"改良版唐揚げ","categoryIds":[1]}`))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rr := httptest.NewRecorder()

	h.UpdateRecipe(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response models.RecipeAggregate
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "改良版唐揚げ", response.Title)
	recipe.AssertExpectations(t)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	recipe.On("UpdateRecipe", "missing", mock.Anything).Return(nil, services.ErrNotFound)

	req, _ := http.NewRequest("PUT", "/api/recipes/missing", strings.NewReader(`{"title":"x","categoryIds":[1]}`))
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rr := httptest.NewRecorder()

	h.UpdateRecipe(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "Recipe not found", response.Error)
}

func TestDeleteRecipe(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	id := "01HV0000000000000000000001"
	recipe.On("DeleteRecipe", id).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/recipes/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rr := httptest.NewRecorder()

	h.DeleteRecipe(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response DeleteResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, id, response.ID)
	recipe.AssertExpectations(t)
}

func TestSetTodayMenu(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	id := "01HV0000000000000000000001"
	now := time.Now().UTC()
	recipe.On("SetTodayMenu", id).Return(&models.TodayMenu{
		ID: id, IsTodayMenu: true, TodayMenuSetAt: &now,
	}, nil)

	req, _ := http.NewRequest("PUT", "/api/recipes/"+id+"/today-menu", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rr := httptest.NewRecorder()

	h.SetTodayMenu(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response models.TodayMenu
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response.IsTodayMenu)
	assert.NotNil(t, response.TodayMenuSetAt)
	recipe.AssertExpectations(t)
}

func TestClearTodayMenu(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	id := "01HV0000000000000000000001"
	recipe.On("ClearTodayMenu", id).Return(&models.TodayMenu{ID: id}, nil)

	req, _ := http.NewRequest("DELETE", "/api/recipes/"+id+"/today-menu", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rr := httptest.NewRecorder()

	h.ClearTodayMenu(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response models.TodayMenu
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.False(t, response.IsTodayMenu)
	assert.Nil(t, response.TodayMenuSetAt)
	recipe.AssertExpectations(t)
}

func TestSetTodayMenu_NotFound(t *testing.T) {
	h, _, recipe, _ := newTestHandlers()
	recipe.On("SetTodayMenu", "missing").Return(nil, services.ErrNotFound)

	req, _ := http.NewRequest("PUT", "/api/recipes/missing/today-menu", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rr := httptest.NewRecorder()

	h.SetTodayMenu(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
