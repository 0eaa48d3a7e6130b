package unitofwork

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/pkg/metrics"
	"ai-realestate-be/internal/repository/contract"
	"ai-realestate-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	ctx       context.Context
	store     contract.KeyValueStore
	notifier  contract.ChangeNotifier
	logger    logger.ILogger
	writeLock *sync.Mutex

	inTx   bool
	staged map[string][]byte
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.inTx {
		return fmt.Errorf("transaction already started")
	}
	u.writeLock.Lock()
	u.ctx = ctx
	u.inTx = true
	u.staged = make(map[string][]byte)
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to commit")
	}
	staged := u.staged
	if len(staged) == 0 {
		u.release()
		return nil
	}

	err := u.store.SetBatch(u.ctx, staged)
	u.release()
	if err != nil {
		return fmt.Errorf("commit %d keys: %w", len(staged), err)
	}

	keys := make([]string, 0, len(staged))
	for k := range staged {
		keys = append(keys, k)
		metrics.StoreWrites.WithLabelValues(k).Inc()
	}
	sort.Strings(keys)
	u.notify(keys)
	return nil
}

func (u *UnitOfWorkImpl) Rollback() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to rollback")
	}
	u.release()
	return nil
}

func (u *UnitOfWorkImpl) release() {
	u.inTx = false
	u.staged = nil
	u.writeLock.Unlock()
}

func (u *UnitOfWorkImpl) notify(keys []string) {
	if u.notifier == nil {
		return
	}
	metrics.StoreNotifications.Inc()
	if err := u.notifier.NotifyChanged(u.ctx, keys); err != nil {
		u.logger.Error("UnitOfWork", "Failed to publish change notification", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}

// Get sees staged writes of the running transaction first.
func (u *UnitOfWorkImpl) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if u.inTx {
		if v, ok := u.staged[key]; ok {
			out := make([]byte, len(v))
			copy(out, v)
			return out, true, nil
		}
	}
	return u.store.Get(ctx, key)
}

// Put stages inside a transaction, otherwise writes through and notifies.
func (u *UnitOfWorkImpl) Put(ctx context.Context, key string, value []byte) error {
	if u.inTx {
		u.staged[key] = value
		return nil
	}
	if err := u.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	metrics.StoreWrites.WithLabelValues(key).Inc()
	u.notify([]string{key})
	return nil
}

// Repository Accessors

func (u *UnitOfWorkImpl) TopicRepository(p entity.Product) contract.TopicRepository {
	return implementation.NewTopicRepository(u, p, u.logger)
}

func (u *UnitOfWorkImpl) ActiveChatRepository(p entity.Product) contract.ActiveChatRepository {
	return implementation.NewActiveChatRepository(u, p, u.logger)
}

func (u *UnitOfWorkImpl) AssetRepository(p entity.Product) contract.AssetRepository {
	return implementation.NewAssetRepository(u, p, u.logger)
}

func (u *UnitOfWorkImpl) PreferenceRepository() contract.PreferenceRepository {
	return implementation.NewPreferenceRepository(u, u.logger)
}
