package domain

// ItemStore persists the whole item collection under a single fixed key.
type ItemStore interface {
	// Load returns the stored collection. Absent or malformed data yields an
	// empty slice; read failures are never returned to the caller.
	Load() []Item

	// Save overwrites the stored collection with items.
	Save(items []Item) error

	Close() error
}
