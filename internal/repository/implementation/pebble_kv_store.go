package implementation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ai-realestate-be/internal/repository/contract"

	"github.com/cockroachdb/pebble"
)

// PebbleKeyValueStore persists keys in an embedded Pebble database.
type PebbleKeyValueStore struct {
	db *pebble.DB
}

func NewPebbleKeyValueStore(path string) (contract.KeyValueStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble at %s: %w", path, err)
	}
	return &PebbleKeyValueStore{db: db}, nil
}

func (s *PebbleKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer closer.Close()
	// copy value, it is only valid until closer.Close
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *PebbleKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	return s.db.Set([]byte(key), value, pebble.Sync)
}

func (s *PebbleKeyValueStore) SetBatch(ctx context.Context, entries map[string][]byte) error {
	b := s.db.NewBatch()
	defer b.Close()
	for k, v := range entries {
		if err := b.Set([]byte(k), v, nil); err != nil {
			return err
		}
	}
	return b.Commit(pebble.Sync)
}

func (s *PebbleKeyValueStore) Delete(ctx context.Context, key string) error {
	return s.db.Delete([]byte(key), pebble.Sync)
}

func (s *PebbleKeyValueStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
