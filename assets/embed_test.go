package assets

import "testing"

func TestBundledCatalogAndTemplates(t *testing.T) {
	b, err := RecipesJSON()
	if err != nil || len(b) == 0 {
		t.Fatalf("recipes.json: %v", err)
	}
	tmpl, err := Templates()
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Lookup("index.html") == nil {
		t.Fatal("index.html not parsed")
	}
}
