package domain

import "strings"

// Category is the closed set of recipe categories. The numeric value is the
// category prefix encoded in recipe ids.
type Category int

const (
	CategoryLunch Category = iota
	CategoryDinner
	CategoryBreakfast
	CategoryDessert
)

// Categories lists every category in prefix order.
var Categories = []Category{CategoryLunch, CategoryDinner, CategoryBreakfast, CategoryDessert}

// String returns the canonical category name.
func (c Category) String() string {
	switch c {
	case CategoryLunch:
		return "Lunch"
	case CategoryDinner:
		return "Dinner"
	case CategoryBreakfast:
		return "Breakfast"
	case CategoryDessert:
		return "Dessert"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	return c >= CategoryLunch && c <= CategoryDessert
}

// Prefix is the id band of the category: ids are Prefix()*1000 + n.
func (c Category) Prefix() int {
	return int(c)
}

// ParseCategory accepts only the canonical names ("Lunch", "Dinner",
// "Breakfast", "Dessert").
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, &CategoryError{Name: name}
}

// LookupCategory matches a category name ignoring case.
func LookupCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return 0, false
}

// CategoryError reports a category name outside the known set.
type CategoryError struct {
	Name string
}

func (e *CategoryError) Error() string {
	return "invalid category: " + e.Name
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidCategory).
func (e *CategoryError) Unwrap() error {
	return ErrInvalidCategory
}
