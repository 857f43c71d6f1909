// Package engine answers the pantry's derived questions: can a recipe be
// made from current stock, and which cataloged recipes can. Engine ties a
// pantry, a catalog and a clock together for the command-line front end.
package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithClock sets the source of "today" for expiry queries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine fronts a pantry and a catalog. It depends only on interfaces and
// is fully testable with in-memory implementations.
type Engine struct {
	pantry  domain.IngredientStore
	catalog domain.RecipeCatalog
	log     *logger.Logger
	now     func() time.Time
}

// New creates an engine with the given dependencies and options.
func New(pantry domain.IngredientStore, catalog domain.RecipeCatalog, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		pantry:  pantry,
		catalog: catalog,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns the current calendar date according to the engine's clock.
func (e *Engine) Today() time.Time {
	return domain.DateOf(e.now())
}

// AddIngredient stores an ingredient (see domain.IngredientStore.Add).
func (e *Engine) AddIngredient(name string, amount float64, unit string, expireDate time.Time, unitPrice float64) domain.AddResult {
	res := e.pantry.Add(name, amount, unit, expireDate, unitPrice)
	e.log.Info("add %s: %s", name, res.Outcome)
	return res
}

// RemoveIngredient takes amount from the first record named name.
func (e *Engine) RemoveIngredient(name string, amount float64) domain.RemoveResult {
	res := e.pantry.Remove(name, amount)
	e.log.Info("remove %s %s: %s", domain.FormatAmount(amount), name, res.Outcome)
	return res
}

// Ingredients returns the pantry sorted by name, then expiration date.
func (e *Engine) Ingredients() []domain.Ingredient {
	all := e.pantry.All()
	slices.SortStableFunc(all, domain.CompareIngredients)
	return all
}

// IngredientsByName returns the records called name, earliest expiry first.
func (e *Engine) IngredientsByName(name string) []domain.Ingredient {
	found := e.pantry.FindByName(name)
	slices.SortStableFunc(found, domain.CompareIngredients)
	return found
}

// IngredientsBetween returns records expiring in [lower, upper].
func (e *Engine) IngredientsBetween(lower, upper time.Time) ([]domain.Ingredient, error) {
	found, err := e.pantry.FindInDateInterval(lower, upper)
	if err != nil {
		return nil, fmt.Errorf("ingredients between: %w", err)
	}
	return found, nil
}

// Expired returns records expired as of today.
func (e *Engine) Expired() []domain.Ingredient {
	return e.pantry.Expired(e.Today())
}

// TotalValue is the value of the whole pantry.
func (e *Engine) TotalValue() float64 {
	return e.pantry.TotalValue()
}

// ExpiredValue is the value of everything expired as of today.
func (e *Engine) ExpiredValue() float64 {
	return e.pantry.ExpiredValue(e.Today())
}

// NextRecipeID previews the id a recipe added to the named category gets.
func (e *Engine) NextRecipeID(category string) (int, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return 0, err
	}
	return e.catalog.NextID(c)
}

// AddRecipe catalogs r under the named category.
func (e *Engine) AddRecipe(r *domain.Recipe, category string) (*domain.Recipe, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		e.log.Warn("add recipe %q: %v", r.Name, err)
		return nil, err
	}
	added, err := e.catalog.Add(r, c)
	if err != nil {
		return nil, fmt.Errorf("adding recipe: %w", err)
	}
	e.log.Info("recipe added: %s with id %d", added.Name, added.ID)
	return added, nil
}

// Recipes returns every cataloged recipe in insertion order.
func (e *Engine) Recipes() []*domain.Recipe {
	return e.catalog.All()
}

// RecipesByCategory lists a category; unknown names give an empty list.
func (e *Engine) RecipesByCategory(category string) []*domain.Recipe {
	return e.catalog.ByCategoryName(category)
}

// FindRecipe looks a recipe up by its exact name.
func (e *Engine) FindRecipe(name string) (*domain.Recipe, error) {
	return e.catalog.FindByName(name)
}

// RecipeByID looks a recipe up by its catalog id.
func (e *Engine) RecipeByID(id int) (*domain.Recipe, error) {
	r, err := e.catalog.Get(id)
	if err != nil {
		return nil, fmt.Errorf("recipe %d: %w", id, err)
	}
	return r, nil
}

// CanMake checks the named recipe against the pantry.
func (e *Engine) CanMake(name string) (domain.Feasibility, error) {
	r, err := e.catalog.FindByName(name)
	if err != nil {
		return domain.Feasibility{}, fmt.Errorf("finding recipe %q: %w", name, err)
	}
	res := CanMake(r, e.pantry)
	e.log.Debug("can make %s: %v (%d shortfalls)", r.Name, res.OK, len(res.Shortfalls))
	return res, nil
}

// Suggest returns every cataloged recipe the pantry can cover.
func (e *Engine) Suggest() []*domain.Recipe {
	out := Suggest(e.catalog, e.pantry)
	e.log.Debug("suggesting %d of %d recipes", len(out), len(e.catalog.All()))
	return out
}

// Summary returns an overview of the pantry as of today.
func (e *Engine) Summary() domain.PantrySummary {
	today := e.Today()
	return domain.PantrySummary{
		Items:        len(e.pantry.All()),
		Expired:      len(e.pantry.Expired(today)),
		TotalValue:   e.pantry.TotalValue(),
		ExpiredValue: e.pantry.ExpiredValue(today),
		Makeable:     len(Suggest(e.catalog, e.pantry)),
		Recipes:      len(e.catalog.All()),
	}
}
