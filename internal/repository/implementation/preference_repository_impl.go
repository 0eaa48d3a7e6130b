package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/contract"
)

type PreferenceRepositoryImpl struct {
	acc    Accessor
	logger logger.ILogger
}

func NewPreferenceRepository(acc Accessor, log logger.ILogger) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{acc: acc, logger: log}
}

// GetAssetCounts returns the cached counts; an unreadable cache is empty,
// it is rebuilt on the next asset save anyway.
func (r *PreferenceRepositoryImpl) GetAssetCounts(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	raw, found, err := r.acc.Get(ctx, constant.AssetCountsKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", constant.AssetCountsKey, err)
	}
	if !found {
		return counts, nil
	}
	if err := json.Unmarshal(raw, &counts); err != nil {
		r.logger.Warn("Store", "Corrupt asset counts treated as empty", map[string]interface{}{"error": err.Error()})
		return map[string]int{}, nil
	}
	return counts, nil
}

func (r *PreferenceRepositoryImpl) SaveAssetCounts(ctx context.Context, counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return r.acc.Put(ctx, constant.AssetCountsKey, data)
}

// GetFlag treats anything other than the string "true" as unset.
func (r *PreferenceRepositoryImpl) GetFlag(ctx context.Context, key string) (bool, error) {
	raw, found, err := r.acc.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	return found && string(raw) == "true", nil
}

func (r *PreferenceRepositoryImpl) SetFlag(ctx context.Context, key string, value bool) error {
	v := "false"
	if value {
		v = "true"
	}
	return r.acc.Put(ctx, key, []byte(v))
}
