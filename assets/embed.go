package assets

import (
	"embed"
	"html/template"
)

//go:embed recipes.json templates/*.html
var FS embed.FS

// RecipesJSON returns the bundled TheMealDB-format catalog.
func RecipesJSON() ([]byte, error) {
	return FS.ReadFile("recipes.json")
}

// Templates parses the page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(FS, "templates/*.html")
}
