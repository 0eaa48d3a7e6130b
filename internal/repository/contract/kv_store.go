package contract

import "context"

// KeyValueStore is the flat string-keyed store every collection lives in.
// Values are opaque bytes; collections store JSON arrays.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	SetBatch(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
