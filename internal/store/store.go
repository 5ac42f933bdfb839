package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/listman/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketLocal = []byte("local_storage")
)

// ItemsKey is the fixed key the collection is stored under
const ItemsKey = "listItems"

// timeLayout is ISO-8601 in UTC with millisecond precision ("2024-01-01T00:00:00.000Z")
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// itemRecord is the persisted shape of a single item
type itemRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	DateCreated string `json:"dateCreated"`
}

// ItemStore implements domain.ItemStore using BoltDB.
type ItemStore struct {
	db     *bolt.DB
	logger *slog.Logger
	mu     sync.RWMutex // Protects memory cache

	// In-memory copy of stored values; the only storage in memory-only mode
	cache map[string][]byte
}

// NewItemStore opens (or creates) the database at dbPath.
// An empty dbPath gives a memory-only store that persists nothing.
func NewItemStore(dbPath string, logger *slog.Logger) (*ItemStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dbPath == "" {
		return &ItemStore{logger: logger, cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLocal)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ItemStore{db: db, logger: logger, cache: make(map[string][]byte)}, nil
}

func (s *ItemStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *ItemStore) get(key string) ([]byte, bool) {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLocal)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to read from store", "key", key, "error", err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, true
}

func (s *ItemStore) set(key string, data []byte) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b, err := tx.CreateBucketIfNotExists(bucketLocal)
			if err != nil {
				return err
			}
			return b.Put([]byte(key), data)
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

// === Items ===

// Load returns the stored items in their saved order. A missing key or a
// value that cannot be decoded yields an empty collection; the problem is
// logged and otherwise swallowed.
func (s *ItemStore) Load() []domain.Item {
	data, ok := s.get(ItemsKey)
	if !ok {
		return []domain.Item{}
	}

	items, err := decodeItems(data)
	if err != nil {
		s.logger.Warn("discarding malformed stored items", "key", ItemsKey, "error", err)
		return []domain.Item{}
	}
	s.logger.Debug("loaded items", "count", len(items))
	return items
}

// Save overwrites the stored collection with items
func (s *ItemStore) Save(items []domain.Item) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	if err := s.set(ItemsKey, data); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	s.logger.Debug("saved items", "count", len(items))
	return nil
}

// encodeItems serializes items as a JSON array of records
func encodeItems(items []domain.Item) ([]byte, error) {
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = itemRecord{
			ID:          item.ID,
			Title:       item.Title,
			Subtitle:    item.Subtitle,
			DateCreated: item.DateCreated.UTC().Format(timeLayout),
		}
	}
	return json.Marshal(records)
}

// decodeItems parses either a JSON array of records or a single record object
func decodeItems(data []byte) ([]domain.Item, error) {
	trimmed := bytes.TrimSpace(data)

	var records []itemRecord
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var rec itemRecord
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return nil, err
		}
		records = []itemRecord{rec}
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(records))
	for _, rec := range records {
		created, err := time.Parse(time.RFC3339, rec.DateCreated)
		if err != nil {
			return nil, fmt.Errorf("item %q: bad dateCreated: %w", rec.ID, err)
		}
		items = append(items, domain.Item{
			ID:          rec.ID,
			Title:       rec.Title,
			Subtitle:    rec.Subtitle,
			DateCreated: created,
		})
	}
	return items, nil
}
