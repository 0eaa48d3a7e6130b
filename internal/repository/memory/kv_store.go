package memory

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// KeyValueStore keeps every key in process memory. It is the default
// backend and the one tests run against.
type KeyValueStore struct {
	cache *cache.Cache
}

func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	x, found := s.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	v := x.([]byte)
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.cache.Set(key, v, cache.NoExpiration)
	return nil
}

func (s *KeyValueStore) SetBatch(ctx context.Context, entries map[string][]byte) error {
	for k, v := range entries {
		if err := s.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *KeyValueStore) Close() error {
	s.cache.Flush()
	return nil
}
