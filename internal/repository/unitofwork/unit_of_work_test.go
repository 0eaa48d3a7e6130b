package unitofwork

import (
	"context"
	"sync"
	"testing"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newFactory() (RepositoryFactory, *memory.KeyValueStore, *recordingNotifier) {
	store := memory.NewKeyValueStore()
	notifier := &recordingNotifier{}
	return NewRepositoryFactory(store, notifier, logger.NewNopLogger()), store, notifier
}

func TestCommitNotifiesOncePerBatch(t *testing.T) {
	ctx := context.Background()
	factory, _, notifier := newFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	assets := []*entity.ContentAsset{{Title: "Handbook", Type: entity.AssetTypePDF, AIType: entity.ProductCompliance}}
	require.NoError(t, uow.AssetRepository(entity.ProductCompliance).SaveAll(ctx, assets))
	require.NoError(t, uow.PreferenceRepository().SaveAssetCounts(ctx, map[string]int{"compliance": 1}))
	require.NoError(t, uow.Commit())

	require.Len(t, notifier.batches, 1)
	assert.Equal(t, []string{constant.AssetCountsKey, constant.AssetsKey(entity.ProductCompliance)}, notifier.batches[0])
}

func TestStagedWritesAreVisibleInsideTransactionOnly(t *testing.T) {
	ctx := context.Background()
	factory, store, notifier := newFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	chats := []*entity.ActiveChat{{Title: "Fair Housing Laws", Path: "/compliance/chat/1"}}
	require.NoError(t, uow.ActiveChatRepository(entity.ProductCompliance).SaveAll(ctx, chats))

	inside, err := uow.ActiveChatRepository(entity.ProductCompliance).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, inside, 1)

	_, found, err := store.Get(ctx, constant.ActiveChatsKey(entity.ProductCompliance))
	require.NoError(t, err)
	assert.False(t, found, "nothing reaches the store before commit")

	require.NoError(t, uow.Rollback())
	assert.Empty(t, notifier.batches)

	_, found, _ = store.Get(ctx, constant.ActiveChatsKey(entity.ProductCompliance))
	assert.False(t, found)
}

func TestWriteThroughOutsideTransaction(t *testing.T) {
	ctx := context.Background()
	factory, store, notifier := newFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.PreferenceRepository().SetFlag(ctx, constant.HasVisitedCoachKey, true))

	raw, found, err := store.Get(ctx, constant.HasVisitedCoachKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", string(raw))
	assert.Equal(t, [][]string{{constant.HasVisitedCoachKey}}, notifier.batches)
}

func TestEmptyCommitDoesNotNotify(t *testing.T) {
	ctx := context.Background()
	factory, _, notifier := newFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())
	assert.Error(t, uow.Rollback(), "rollback after commit reports no transaction")
	assert.Empty(t, notifier.batches)
}

func TestBeginTwiceFails(t *testing.T) {
	ctx := context.Background()
	factory, _, _ := newFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()
	assert.Error(t, uow.Begin(ctx))
}
