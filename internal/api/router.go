// Package api wires the HTTP routes to the handlers.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/shinohara-jil/recipe-app/internal/api/handlers"
)

// SetupRouter configures the main router: public health/info endpoints, the
// API routes, the swagger UI and, for the local storage backend, the image
// file server. The returned handler has CORS applied so the browser UI can
// be served from a different origin during development.
func SetupRouter(h *handlers.Handlers) http.Handler {
	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/info", h.GetInfo).Methods("GET")

	addCategoryRoutes(apiRouter, h)
	addRecipeRoutes(apiRouter, h)
	apiRouter.HandleFunc("/upload", h.UploadImage).Methods("POST")

	// The local blob store returns URLs under /images/; serve that directory
	// from this process. Remote backends (S3, Cloudinary) serve their own.
	if h.Cfg.Storage.Backend == "local" {
		root := h.Cfg.Storage.LocalRoot
		if root == "" {
			root = "image_store"
		}
		r.PathPrefix("/images/").Handler(
			http.StripPrefix("/images/", http.FileServer(http.Dir(root))),
		)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

// addCategoryRoutes configures routes for the category taxonomy.
func addCategoryRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/categories", h.GetCategories).Methods("GET")
	r.HandleFunc("/categories", h.CreateCategory).Methods("POST")
	r.HandleFunc("/categories/{id}", h.UpdateCategory).Methods("PUT")
	r.HandleFunc("/categories/{id}", h.DeleteCategory).Methods("DELETE")
}

// addRecipeRoutes configures routes for recipe aggregates and the
// today's-menu flag.
func addRecipeRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/recipes", h.GetRecipes).Methods("GET")
	r.HandleFunc("/recipes", h.CreateRecipe).Methods("POST")
	r.HandleFunc("/recipes/{id}", h.UpdateRecipe).Methods("PUT")
	r.HandleFunc("/recipes/{id}", h.DeleteRecipe).Methods("DELETE")
	r.HandleFunc("/recipes/{id}/today-menu", h.SetTodayMenu).Methods("PUT")
	r.HandleFunc("/recipes/{id}/today-menu", h.ClearTodayMenu).Methods("DELETE")
}
