// filepath: cmd/recipehub/main.go
package main

import (
	"github.com/shinohara-jil/recipe-app/internal/cli"

	// Import docs for Swagger
	_ "github.com/shinohara-jil/recipe-app/docs"
)

// @title RecipeHub API
// @version 1.0.0
// @description REST API for a personal recipe collection: categories, recipes with photos, and the today's-menu pick.
// @BasePath /api
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
