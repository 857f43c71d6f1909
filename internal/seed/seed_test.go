package seed

import (
	"testing"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/engine"
	"github.com/hammamikhairi/ottopantry/internal/logger"
	"github.com/hammamikhairi/ottopantry/internal/recipe"
	"github.com/hammamikhairi/ottopantry/internal/storage"
)

func TestSeedPantry(t *testing.T) {
	p := storage.NewPantry(logger.New(logger.LevelOff, nil))
	n := Pantry(p)

	if n != 50 || p.Len() != 50 {
		t.Fatalf("expected 50 records, got n=%d len=%d", n, p.Len())
	}
	eggs := p.FindByName("eggs")
	if len(eggs) != 1 || eggs[0].Amount != 10 || eggs[0].Unit != "pcs" {
		t.Fatalf("unexpected eggs %+v", eggs)
	}
}

func TestSeedCookbook(t *testing.T) {
	c := recipe.NewCatalog(logger.New(logger.LevelOff, nil))
	n, err := Cookbook(c)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 14 || c.Len() != 14 {
		t.Fatalf("expected 14 recipes, got n=%d len=%d", n, c.Len())
	}

	tests := []struct {
		name string
		id   int
	}{
		{"Pancake", 2001},
		{"Scrambled Eggs", 2002},
		{"Spaghetti Bolognese", 1},
		{"Chocolate Cake", 3001},
		{"Grilled Chicken", 1001},
		{"Chicken Wrap", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := c.FindByName(tt.name)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if r.ID != tt.id {
				t.Fatalf("expected id %d, got %d", tt.id, r.ID)
			}
		})
	}

	if got := len(c.ByCategory(domain.CategoryBreakfast)); got != 4 {
		t.Fatalf("expected 4 breakfasts, got %d", got)
	}
}

func TestSeedSuggestions(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	p := storage.NewPantry(log)
	c := recipe.NewCatalog(log)
	Pantry(p)
	if _, err := Cookbook(c); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got := map[string]bool{}
	for _, r := range engine.Suggest(c, p) {
		got[r.Name] = true
	}
	// Units are opaque: 1 kg of flour does not cover 250 g.
	if len(got) != 1 || !got["Pancake"] {
		t.Fatalf("expected only pancake, got %v", got)
	}
}
