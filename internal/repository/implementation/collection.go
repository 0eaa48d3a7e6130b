package implementation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/pkg/metrics"
)

// Accessor is the read/write view a repository gets of the store. The unit
// of work implements it so writes can be staged until commit.
type Accessor interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// decodeCollection only accepts a JSON array. Anything else, including a
// literal null, is reported as ErrCorruptCollection.
func decodeCollection[M any](raw []byte) ([]*M, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperror.ErrCorruptCollection
	}
	var items []*M
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrCorruptCollection, err)
	}
	return items, nil
}

// loadCollection reads key as a JSON array. A missing key is an empty
// collection; so is a corrupt one, which is logged and counted instead of
// being surfaced.
func loadCollection[M any](ctx context.Context, acc Accessor, key string, log logger.ILogger) ([]*M, error) {
	items, err := loadCollectionStrict[M](ctx, acc, key)
	if err == nil {
		return items, nil
	}
	if !isCorrupt(err) {
		return nil, err
	}
	metrics.StoreCorruptReads.WithLabelValues(key).Inc()
	log.Warn("Store", "Corrupt collection treated as empty", map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})
	return []*M{}, nil
}

func loadCollectionStrict[M any](ctx context.Context, acc Accessor, key string) ([]*M, error) {
	raw, found, err := acc.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return []*M{}, nil
	}
	return decodeCollection[M](raw)
}

func saveCollection[M any](ctx context.Context, acc Accessor, key string, items []*M) error {
	if items == nil {
		items = []*M{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return acc.Put(ctx, key, data)
}

func isCorrupt(err error) bool {
	return errors.Is(err, apperror.ErrCorruptCollection)
}
