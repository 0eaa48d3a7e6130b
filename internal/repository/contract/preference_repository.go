package contract

import "context"

// PreferenceRepository holds the small non-collection keys: the asset count
// cache and one-time flags.
type PreferenceRepository interface {
	GetAssetCounts(ctx context.Context) (map[string]int, error)
	SaveAssetCounts(ctx context.Context, counts map[string]int) error
	GetFlag(ctx context.Context, key string) (bool, error)
	SetFlag(ctx context.Context, key string, value bool) error
}
