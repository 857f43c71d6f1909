// Package domain defines the core types and interfaces for the pantry
// assistant. All other packages depend on domain; domain depends on nothing.
package domain

import (
	"fmt"
	"strings"
)

// Recipe is a named procedure with an ordered list of required ingredients.
// ID and Category are assigned by the catalog when the recipe is added; an
// ID of 0 means the recipe has not been cataloged yet.
type Recipe struct {
	ID           int
	Name         string
	Description  string
	Instructions string
	Category     Category
	Ingredients  []Ingredient // required amounts; names unique ignoring case
}

// NewRecipe creates an uncataloged recipe with no requirements.
func NewRecipe(name, description, instructions string) *Recipe {
	return &Recipe{
		Name:         name,
		Description:  description,
		Instructions: instructions,
	}
}

// AddIngredient adds a requirement. A name already required (ignoring case)
// has its amount increased instead of getting a second entry. Returns the
// recipe so calls can be chained.
func (r *Recipe) AddIngredient(name string, amount float64, unit string) *Recipe {
	for i := range r.Ingredients {
		if r.Ingredients[i].SameName(name) {
			r.Ingredients[i].Amount += amount
			return r
		}
	}
	r.Ingredients = append(r.Ingredients, Ingredient{Name: name, Amount: amount, Unit: unit})
	return r
}

// Requirement returns the required entry for name, ignoring case.
func (r *Recipe) Requirement(name string) (Ingredient, bool) {
	for _, ing := range r.Ingredients {
		if ing.SameName(name) {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// String returns a field-complete summary of the recipe.
func (r *Recipe) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe: %s\nDescription: %s\nInstruction: %s\nIngredients:\n",
		r.Name, r.Description, r.Instructions)
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s: %s %s\n", ing.Name, FormatAmount(ing.Amount), ing.Unit)
	}
	return b.String()
}
