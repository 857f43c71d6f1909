package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
	"github.com/hammamikhairi/ottopantry/internal/recipe"
	"github.com/hammamikhairi/ottopantry/internal/storage"
)

func setupEngine(t *testing.T) *Engine {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	today := func() time.Time { return time.Date(2023, 12, 1, 18, 30, 0, 0, time.UTC) }
	return New(storage.NewPantry(log), recipe.NewCatalog(log), log, WithClock(today))
}

func TestEngineToday(t *testing.T) {
	eng := setupEngine(t)
	if got := eng.Today(); !got.Equal(domain.Date(2023, 12, 1)) {
		t.Fatalf("expected 2023-12-01, got %s", got)
	}
}

func TestEngineAddRecipe(t *testing.T) {
	eng := setupEngine(t)

	tests := []struct {
		name     string
		category string
		wantID   int
		wantErr  error
	}{
		{"first breakfast", "Breakfast", 2001, nil},
		{"second breakfast", "Breakfast", 2002, nil},
		{"first lunch", "Lunch", 1, nil},
		{"unknown", "Brunch", 0, domain.ErrInvalidCategory},
		{"lowercase", "dinner", 0, domain.ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, nextErr := eng.NextRecipeID(tt.category)
			r, err := eng.AddRecipe(domain.NewRecipe(tt.name, "", ""), tt.category)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(nextErr, tt.wantErr) {
					t.Fatalf("expected %v, got %v / %v", tt.wantErr, err, nextErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.wantID || next != tt.wantID {
				t.Fatalf("expected id %d, got %d (preview %d)", tt.wantID, r.ID, next)
			}
		})
	}

	if got := len(eng.Recipes()); got != 3 {
		t.Fatalf("expected 3 recipes, got %d", got)
	}
	if got := len(eng.RecipesByCategory("BREAKFAST")); got != 2 {
		t.Fatalf("expected 2 breakfasts, got %d", got)
	}
}

func TestEngineCanMake(t *testing.T) {
	eng := setupEngine(t)
	eng.AddRecipe(domain.NewRecipe("Scrambled Eggs", "", "").AddIngredient("Eggs", 2, "pcs"), "Breakfast")
	eng.AddIngredient("Eggs", 1, "pcs", domain.Date(2023, 12, 10), 5)

	res, err := eng.CanMake("Scrambled Eggs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK || len(res.Shortfalls) != 1 || res.Shortfalls[0].Available != 1 {
		t.Fatalf("expected one shortfall with 1 available, got %+v", res)
	}

	eng.AddIngredient("eggs", 1, "pcs", domain.Date(2023, 12, 10), 5)
	res, _ = eng.CanMake("Scrambled Eggs")
	if !res.OK {
		t.Fatalf("expected makeable after restock, got %+v", res.Shortfalls)
	}

	if _, err := eng.CanMake("scrambled eggs"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for case-mismatched name, got %v", err)
	}
	if _, err := eng.CanMake(""); !errors.Is(err, domain.ErrInvalidRecipeName) {
		t.Fatalf("expected ErrInvalidRecipeName, got %v", err)
	}
}

func TestEngineExpiryUsesClock(t *testing.T) {
	eng := setupEngine(t)
	eng.AddIngredient("Milk", 2, "liter", domain.Date(2023, 11, 30), 60)
	eng.AddIngredient("Eggs", 10, "pcs", domain.Date(2023, 12, 1), 5)
	eng.AddIngredient("Rice", 2, "kg", domain.Date(2025, 7, 15), 90)

	expired := eng.Expired()
	if len(expired) != 1 || expired[0].Name != "Milk" {
		t.Fatalf("expected milk expired, got %+v", expired)
	}
	if got := eng.ExpiredValue(); got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}
	if got := eng.TotalValue(); got != 350 {
		t.Fatalf("expected 350, got %v", got)
	}
}

func TestEngineIngredientsSorted(t *testing.T) {
	eng := setupEngine(t)
	eng.AddIngredient("Milk", 2, "liter", domain.Date(2023, 11, 30), 60)
	eng.AddIngredient("apple", 6, "pcs", domain.Date(2023, 12, 5), 30)
	eng.AddIngredient("Banana", 8, "pcs", domain.Date(2023, 12, 3), 24)

	var names []string
	for _, ing := range eng.Ingredients() {
		names = append(names, ing.Name)
	}
	want := []string{"apple", "Banana", "Milk"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestEngineIngredientsBetween(t *testing.T) {
	eng := setupEngine(t)
	_, err := eng.IngredientsBetween(domain.Date(2023, 12, 1), domain.Date(2023, 11, 1))
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestEngineSummary(t *testing.T) {
	eng := setupEngine(t)
	eng.AddIngredient("Milk", 2, "liter", domain.Date(2023, 11, 30), 60)
	eng.AddIngredient("Eggs", 10, "pcs", domain.Date(2023, 12, 10), 5)
	eng.AddRecipe(domain.NewRecipe("Scrambled Eggs", "", "").AddIngredient("Eggs", 4, "pcs"), "Breakfast")
	eng.AddRecipe(domain.NewRecipe("Cake", "", "").AddIngredient("Flour", 1, "kg"), "Dessert")

	got := eng.Summary()
	want := domain.PantrySummary{Items: 2, Expired: 1, TotalValue: 170, ExpiredValue: 120, Makeable: 1, Recipes: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestEngineIngredientsByNameEarliestFirst(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	pantry := storage.NewPantry(log, storage.WithMergeDecider(domain.AddAsDuplicate))
	eng := New(pantry, recipe.NewCatalog(log), log)

	eng.AddIngredient("Tomato", 3, "kg", domain.Date(2023, 12, 9), 50)
	eng.AddIngredient("tomato", 1, "kg", domain.Date(2023, 12, 2), 50)

	found := eng.IngredientsByName("TOMATO")
	if len(found) != 2 {
		t.Fatalf("expected 2 records, got %d", len(found))
	}
	if !found[0].ExpireDate.Equal(domain.Date(2023, 12, 2)) {
		t.Fatalf("expected earliest expiry first, got %s", domain.FormatDate(found[0].ExpireDate))
	}
}

func TestEngineRecipeByID(t *testing.T) {
	eng := setupEngine(t)
	added, err := eng.AddRecipe(domain.NewRecipe("Pancake", "", ""), "Breakfast")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := eng.RecipeByID(2001)
	if err != nil || got != added {
		t.Fatalf("expected Pancake at 2001, got %v (%v)", got, err)
	}
	if _, err := eng.RecipeByID(2002); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
