package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrCategoryFull      = errors.New("category has no free ids")
	ErrInvalidRecipeName = errors.New("recipe name cannot be empty")
	ErrInvalidDateRange  = errors.New("invalid date range")
)
