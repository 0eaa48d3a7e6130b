package service

import (
	"context"
	"sync"
	"testing"

	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/memory"
	"ai-realestate-be/internal/repository/unitofwork"
)

type recordingNotifier struct {
	mu      sync.Mutex
	batches [][]string
}

func (n *recordingNotifier) NotifyChanged(ctx context.Context, keys []string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.batches = append(n.batches, keys)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.batches)
}

func (n *recordingNotifier) last() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.batches) == 0 {
		return nil
	}
	return n.batches[len(n.batches)-1]
}

type fixture struct {
	store    *memory.KeyValueStore
	notifier *recordingNotifier
	factory  unitofwork.RepositoryFactory
	log      logger.ILogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewKeyValueStore()
	notifier := &recordingNotifier{}
	log := logger.NewNopLogger()
	return &fixture{
		store:    store,
		notifier: notifier,
		factory:  unitofwork.NewRepositoryFactory(store, notifier, log),
		log:      log,
	}
}
