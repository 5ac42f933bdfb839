package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/listman/internal/domain"
)

// ItemService owns the authoritative item collection and keeps the store in sync
type ItemService struct {
	store  domain.ItemStore
	logger *slog.Logger

	// Overridable for tests
	now   func() time.Time
	newID func() string

	mu     sync.RWMutex
	items  []domain.Item
	loaded bool
}

// NewItemService creates a new item service backed by store
func NewItemService(store domain.ItemStore, logger *slog.Logger) *ItemService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemService{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
		items:  []domain.Item{},
	}
}

// Load reads the persisted collection the first time it is called.
// Later calls return the in-memory collection without touching the store.
func (s *ItemService) Load(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.items = s.store.Load()
		s.loaded = true
		s.logger.Info("items loaded", "count", len(s.items))
	}
	return s.snapshot(), nil
}

// Loaded reports whether Load has completed
func (s *ItemService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Items returns a copy of the current collection
func (s *ItemService) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Get returns the item with the given id
func (s *ItemService) Get(id string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return domain.Item{}, false
}

// Create appends a new item built from draft and persists the collection
func (s *ItemService) Create(draft domain.Draft) (domain.Item, error) {
	if draft.Validate() != nil {
		return domain.Item{}, domain.ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.Item{}, domain.ErrNotLoaded
	}

	n := draft.Normalize()
	item := domain.Item{
		ID:          s.newID(),
		Title:       n.Title,
		Subtitle:    n.Subtitle,
		DateCreated: s.now().UTC().Truncate(time.Millisecond),
	}
	s.items = append(s.items, item)
	s.logger.Info("item created", "id", item.ID)

	return item, s.persist()
}

// Update replaces the title and subtitle of the item with the given id.
// ok is false when no such item exists; nothing is saved in that case.
func (s *ItemService) Update(id string, draft domain.Draft) (item domain.Item, ok bool, err error) {
	if draft.Validate() != nil {
		return domain.Item{}, false, domain.ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.Item{}, false, domain.ErrNotLoaded
	}

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("update skipped, item not found", "id", id)
		return domain.Item{}, false, nil
	}

	s.items[i] = s.items[i].Apply(draft)
	s.logger.Info("item updated", "id", id)

	return s.items[i], true, s.persist()
}

// Delete removes the item with the given id.
// ok is false when no such item exists; nothing is saved in that case.
func (s *ItemService) Delete(id string) (item domain.Item, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.Item{}, false, domain.ErrNotLoaded
	}

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("delete skipped, item not found", "id", id)
		return domain.Item{}, false, nil
	}

	item = s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.logger.Info("item deleted", "id", id)

	return item, true, s.persist()
}

// persist writes the full collection; callers hold s.mu
func (s *ItemService) persist() error {
	if err := s.store.Save(s.snapshot()); err != nil {
		s.logger.Error("failed to save items", "error", err)
		return fmt.Errorf("saving items: %w", err)
	}
	return nil
}

func (s *ItemService) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *ItemService) snapshot() []domain.Item {
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out
}
