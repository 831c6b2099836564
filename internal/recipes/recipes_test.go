package recipes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const arrabiata = `{"meals":[{
	"idMeal":"52771",
	"strMeal":"Spicy Arrabiata Penne",
	"strCategory":"Vegetarian",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
	"strIngredient1":"penne rigate",
	"strIngredient2":"olive oil",
	"strIngredient3":"garlic",
	"strIngredient4":"chopped tomatoes",
	"strIngredient5":"red chilli flakes",
	"strIngredient6":"olive oil",
	"strIngredient7":" ",
	"strIngredient8":"",
	"strIngredient9":null,
	"strIngredient10":"Parmigiano-Reggiano",
	"strIngredient11":"garlic"
}]}`

func TestParseNormalizesIngredients(t *testing.T) {
	r, err := Parse([]byte(arrabiata))
	if err != nil {
		t.Fatal(err)
	}
	want := &Recipe{
		ID:       "52771",
		Title:    "Spicy Arrabiata Penne",
		Category: "Vegetarian",
		Image:    "https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
		Ingredients: []string{
			"penne rigate", "olive oil", "garlic", "chopped tomatoes",
			"red chilli flakes", "Parmigiano-Reggiano",
		},
	}
	if !reflect.DeepEqual(r, want) {
		t.Fatalf("Parse =\n%+v\nwant\n%+v", r, want)
	}
}

func TestParseFailures(t *testing.T) {
	cases := map[string]string{
		"malformed": `{"meals":[`,
		"null meals": `{"meals":null}`,
		"empty meals": `{"meals":[]}`,
		"not an object": `{"meals":["x"]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); !errors.Is(err, ErrProviderFailure) {
				t.Fatalf("err = %v, want ErrProviderFailure", err)
			}
		})
	}
}

func TestParseMealWithoutIngredients(t *testing.T) {
	r, err := Parse([]byte(`{"meals":[{"strMeal":"Water"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Ingredients) != 0 || r.Title != "Water" {
		t.Fatalf("recipe %+v", r)
	}
}

func TestMealDBFetchRandom(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		_, _ = w.Write([]byte(arrabiata))
	}))
	defer ts.Close()

	r, err := NewMealDB(ts.URL, 0).FetchRandom(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.Title != "Spicy Arrabiata Penne" || len(r.Ingredients) != 6 {
		t.Fatalf("recipe %+v", r)
	}
}

func TestMealDBFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"non-2xx": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		},
		"malformed": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		},
		"no meals": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"meals":null}`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(h)
			defer ts.Close()
			if _, err := NewMealDB(ts.URL, 0).FetchRandom(context.Background()); !errors.Is(err, ErrProviderFailure) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestMealDBCancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(arrabiata))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMealDB(ts.URL, 0).FetchRandom(ctx); !errors.Is(err, ErrProviderFailure) {
		t.Fatalf("err = %v", err)
	}
}

func TestCatalog(t *testing.T) {
	doc := []byte(`{"meals":[
		{"strMeal":"A","strIngredient1":"Egg"},
		{"strMeal":"B","strIngredient1":"Milk","strIngredient2":"Milk"}
	]}`)
	c, err := NewCatalog(doc)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d", c.Len())
	}
	c.intN = func(int) int { return 1 }
	r, err := c.FetchRandom(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.Title != "B" || !reflect.DeepEqual(r.Ingredients, []string{"Milk"}) {
		t.Fatalf("recipe %+v", r)
	}

	r.Ingredients[0] = "changed"
	again, _ := c.FetchRandom(context.Background())
	if again.Ingredients[0] != "Milk" {
		t.Fatal("catalog recipe shared with caller")
	}
}

func TestEmptyCatalogFails(t *testing.T) {
	c, err := NewCatalog([]byte(`{"meals":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.FetchRandom(context.Background()); !errors.Is(err, ErrProviderFailure) {
		t.Fatalf("err = %v", err)
	}
	if _, err := NewCatalog([]byte(`nope`)); err == nil {
		t.Fatal("malformed catalog accepted")
	}
}
