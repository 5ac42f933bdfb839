package domain

import "errors"

// Sentinel errors for item operations
var (
	// ErrInvalidItem indicates a title or subtitle was empty after trimming
	ErrInvalidItem = errors.New("title and subtitle are required")

	// ErrNotLoaded indicates a mutation was attempted before the collection was loaded
	ErrNotLoaded = errors.New("items have not been loaded yet")
)
