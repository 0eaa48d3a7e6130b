package contract

import "context"

// ChangeNotifier is told once per committed write batch which keys changed.
type ChangeNotifier interface {
	NotifyChanged(ctx context.Context, keys []string) error
}
