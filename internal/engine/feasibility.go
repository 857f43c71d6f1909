package engine

import (
	"strings"

	"github.com/hammamikhairi/ottopantry/internal/domain"
)

// Stock is a read-only view of pantry records.
type Stock interface {
	All() []domain.Ingredient
}

// RecipeLister is a read-only view of a recipe catalog.
type RecipeLister interface {
	All() []*domain.Recipe
}

// CanMake checks every requirement of r against stock. A requirement is met
// when the pantry holds at least the required amount under the same name
// (ignoring case). Records sharing a name are summed. Neither argument is
// modified.
func CanMake(r *domain.Recipe, stock Stock) domain.Feasibility {
	return canMake(r, levels(stock))
}

// Suggest returns every recipe CanMake accepts, in the lister's order.
func Suggest(recipes RecipeLister, stock Stock) []*domain.Recipe {
	have := levels(stock)
	out := []*domain.Recipe{}
	for _, r := range recipes.All() {
		if canMake(r, have).OK {
			out = append(out, r)
		}
	}
	return out
}

func canMake(r *domain.Recipe, have map[string]float64) domain.Feasibility {
	res := domain.Feasibility{Recipe: r, OK: true}
	for _, req := range r.Ingredients {
		available, ok := have[key(req.Name)]
		if ok && available >= req.Amount {
			continue
		}
		res.OK = false
		res.Shortfalls = append(res.Shortfalls, domain.Shortfall{
			Name:      req.Name,
			Unit:      req.Unit,
			Required:  req.Amount,
			Available: available,
			Absent:    !ok,
		})
	}
	return res
}

// levels maps lowercased ingredient names to the summed amount on hand.
func levels(stock Stock) map[string]float64 {
	have := make(map[string]float64)
	for _, ing := range stock.All() {
		have[key(ing.Name)] += ing.Amount
	}
	return have
}

func key(name string) string {
	return strings.ToLower(name)
}
