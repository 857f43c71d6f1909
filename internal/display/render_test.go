package display

import (
	"strings"
	"testing"

	"github.com/hammamikhairi/ottopantry/internal/domain"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		v        float64
		currency string
		want     string
	}{
		{20, "kr", "20.00 kr"},
		{0.5, "", "0.50"},
		{1234.567, "kr", "1234.57 kr"},
	}
	for _, tt := range tests {
		if got := Money(tt.v, tt.currency); got != tt.want {
			t.Errorf("Money(%v, %q) = %q, want %q", tt.v, tt.currency, got, tt.want)
		}
	}
}

func TestRenderIngredientsFlagsExpired(t *testing.T) {
	items := []domain.Ingredient{
		{Name: "Milk", Amount: 1, Unit: "liter", ExpireDate: domain.Date(2023, 11, 20), UnitPrice: 15},
		{Name: "Butter", Amount: 0.2, Unit: "kg", ExpireDate: domain.Date(2023, 12, 5), UnitPrice: 20},
	}
	out := RenderIngredients(items, domain.Date(2023, 12, 1), "kr")

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Milk") || !strings.Contains(lines[1], "expired") {
		t.Errorf("expected Milk flagged as expired, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "0.2 kg") || strings.Contains(lines[2], "expired") {
		t.Errorf("unexpected Butter row %q", lines[2])
	}
}

func TestRenderIngredientsEmpty(t *testing.T) {
	if out := RenderIngredients(nil, domain.Date(2023, 12, 1), "kr"); !strings.Contains(out, "no ingredients") {
		t.Fatalf("got %q", out)
	}
}

func TestRenderFeasibility(t *testing.T) {
	r := domain.NewRecipe("Omelette", "", "").AddIngredient("Eggs", 2, "pcs")

	ok := RenderFeasibility(domain.Feasibility{Recipe: r, OK: true})
	if !strings.Contains(ok, "You can make Omelette.") {
		t.Errorf("got %q", ok)
	}

	missing := RenderFeasibility(domain.Feasibility{
		Recipe:     r,
		Shortfalls: []domain.Shortfall{{Name: "Eggs", Unit: "pcs", Required: 2, Available: 1}},
	})
	if !strings.Contains(missing, "Eggs (only 1 available, requires 2 pcs)") {
		t.Errorf("got %q", missing)
	}
}

func TestRenderRecipe(t *testing.T) {
	r := domain.NewRecipe("Pancake", "Thin pancakes", "Whisk and fry.").
		AddIngredient("Flour", 0.3, "kg").
		AddIngredient("Milk", 0.5, "liter")
	r.ID = 2000
	r.Category = domain.CategoryBreakfast

	out := RenderRecipe(r)
	for _, want := range []string{"Pancake", "#2000", "Breakfast", "- Flour: 0.3 kg", "- Milk: 0.5 liter", "Whisk and fry."} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(domain.PantrySummary{Items: 3, Expired: 1, TotalValue: 100, ExpiredValue: 15, Makeable: 1, Recipes: 2}, "kr")
	for _, want := range []string{"100.00 kr", "1 (15.00 kr)", "1 of 2 recipes"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestCenterBanner(t *testing.T) {
	out := centerBanner("ab\nabcd\n", 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "   ab") || !strings.HasPrefix(lines[1], "   abcd") {
		t.Fatalf("expected 3-space padding, got %q", lines)
	}

	narrow := centerBanner("abcd", 2)
	if strings.HasPrefix(narrow, " ") {
		t.Fatalf("expected no padding on narrow terminal, got %q", narrow)
	}
}
