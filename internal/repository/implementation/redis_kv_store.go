package implementation

import (
	"context"
	"errors"

	"ai-realestate-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// RedisKeyValueStore shares one keyspace between every instance of the
// service. Writers do not coordinate: the last SET wins.
type RedisKeyValueStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisKeyValueStore(rdb *redis.Client, prefix string) contract.KeyValueStore {
	return &RedisKeyValueStore{rdb: rdb, prefix: prefix}
}

func (s *RedisKeyValueStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func (s *RedisKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisKeyValueStore) SetBatch(ctx context.Context, entries map[string][]byte) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, s.key(k), v, 0)
		}
		return nil
	})
	return err
}

func (s *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.key(key)).Err()
}

// Close leaves the client open; it is shared with the websocket hub.
func (s *RedisKeyValueStore) Close() error {
	return nil
}
