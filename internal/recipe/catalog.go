// Package recipe provides the recipe catalog: category-indexed storage with
// deterministic id assignment.
package recipe

import (
	"fmt"

	"github.com/hammamikhairi/ottopantry/internal/domain"
	"github.com/hammamikhairi/ottopantry/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeCatalog = (*Catalog)(nil)

// idBand is the width of each category's id range.
const idBand = 1000

// Catalog owns cataloged recipes. Not safe for concurrent use.
type Catalog struct {
	byID       map[int]*domain.Recipe
	order      []*domain.Recipe
	byCategory map[domain.Category][]*domain.Recipe
	log        *logger.Logger
}

// NewCatalog creates an empty catalog.
func NewCatalog(log *logger.Logger) *Catalog {
	return &Catalog{
		byID:       make(map[int]*domain.Recipe),
		byCategory: make(map[domain.Category][]*domain.Recipe),
		log:        log,
	}
}

// NextID returns the id the next recipe added to category will get:
// prefix*1000 + (recipes already in the category + 1). A category holds at
// most 999 recipes so its ids never reach the next category's band.
func (c *Catalog) NextID(category domain.Category) (int, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("next id: %w", domain.ErrInvalidCategory)
	}
	seq := len(c.byCategory[category]) + 1
	if seq >= idBand {
		return 0, fmt.Errorf("category %s is full: %w", category, domain.ErrCategoryFull)
	}
	return category.Prefix()*idBand + seq, nil
}

// Add assigns the recipe its id and category and catalogs it. A recipe that
// already carries an id belongs to a catalog and is rejected.
func (c *Catalog) Add(r *domain.Recipe, category domain.Category) (*domain.Recipe, error) {
	if r.ID != 0 {
		return nil, fmt.Errorf("recipe %q (id %d): %w", r.Name, r.ID, domain.ErrAlreadyExists)
	}
	id, err := c.NextID(category)
	if err != nil {
		c.log.Warn("rejected recipe %q: %v", r.Name, err)
		return nil, err
	}
	if taken, ok := c.byID[id]; ok {
		return nil, fmt.Errorf("id %d held by %q: %w", id, taken.Name, domain.ErrAlreadyExists)
	}

	r.ID = id
	r.Category = category
	c.byID[id] = r
	c.order = append(c.order, r)
	c.byCategory[category] = append(c.byCategory[category], r)

	c.log.Debug("recipe added: %s with id %d (%s)", r.Name, id, category)
	return r, nil
}

// Get returns a recipe by id.
func (c *Catalog) Get(id int) (*domain.Recipe, error) {
	r, ok := c.byID[id]
	if !ok {
		c.log.Debug("recipe not found: %d", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// FindByName returns the first recipe, in insertion order, whose name is
// exactly name. Unlike ingredient lookups this match is case-sensitive.
func (c *Catalog) FindByName(name string) (*domain.Recipe, error) {
	if name == "" {
		return nil, domain.ErrInvalidRecipeName
	}
	for _, r := range c.order {
		if r.Name == name {
			return r, nil
		}
	}
	c.log.Debug("recipe not found: %q", name)
	return nil, domain.ErrNotFound
}

// ByCategory returns the category's recipes in insertion order.
func (c *Catalog) ByCategory(category domain.Category) []*domain.Recipe {
	return append([]*domain.Recipe{}, c.byCategory[category]...)
}

// ByCategoryName looks the category up ignoring case. Unknown names yield an
// empty list.
func (c *Catalog) ByCategoryName(name string) []*domain.Recipe {
	category, ok := domain.LookupCategory(name)
	if !ok {
		c.log.Debug("no such category: %q", name)
		return []*domain.Recipe{}
	}
	return c.ByCategory(category)
}

// All returns every recipe in insertion order.
func (c *Catalog) All() []*domain.Recipe {
	return append([]*domain.Recipe{}, c.order...)
}

// Len returns the number of cataloged recipes.
func (c *Catalog) Len() int {
	return len(c.order)
}
