package domain

import (
	"context"
	"time"
)

// IngredientStore owns the pantry's ingredient records. Implementations are
// single-owner containers and need not be safe for concurrent use.
type IngredientStore interface {
	Add(name string, amount float64, unit string, expireDate time.Time, unitPrice float64) AddResult
	Remove(name string, amount float64) RemoveResult
	All() []Ingredient
	FindByName(name string) []Ingredient
	FindInDateInterval(lower, upper time.Time) ([]Ingredient, error)
	Expired(asOf time.Time) []Ingredient
	TotalValue() float64
	ExpiredValue(asOf time.Time) float64
}

// RecipeCatalog owns cataloged recipes and assigns their ids.
type RecipeCatalog interface {
	NextID(category Category) (int, error)
	Add(recipe *Recipe, category Category) (*Recipe, error)
	Get(id int) (*Recipe, error)
	FindByName(name string) (*Recipe, error)
	ByCategory(category Category) []*Recipe
	ByCategoryName(name string) []*Recipe
	All() []*Recipe
}

// CommandParser converts a raw prompt line into a structured command.
type CommandParser interface {
	Parse(ctx context.Context, input string) (*Command, error)
}

// Notifier delivers messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
