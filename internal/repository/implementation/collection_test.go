package implementation

import (
	"context"
	"errors"
	"testing"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapAccessor map[string][]byte

func (m mapAccessor) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapAccessor) Put(ctx context.Context, key string, value []byte) error {
	m[key] = value
	return nil
}

type failingAccessor struct{}

func (failingAccessor) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingAccessor) Put(ctx context.Context, key string, value []byte) error {
	return errors.New("connection refused")
}

func TestActiveChatsCorruptValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "not json"},
		{name: "object instead of array", raw: `{"title":"x"}`},
		{name: "null", raw: "null"},
		{name: "truncated array", raw: `[{"title":"x"`},
		{name: "empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := mapAccessor{constant.ActiveChatsKey(entity.ProductCoach): []byte(tt.raw)}
			repo := NewActiveChatRepository(acc, entity.ProductCoach, logger.NewNopLogger())

			chats, err := repo.FindAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, chats)

			_, err = repo.LoadStrict(context.Background())
			assert.ErrorIs(t, err, apperror.ErrCorruptCollection)
		})
	}
}

func TestMissingKeyIsEmptyCollection(t *testing.T) {
	repo := NewTopicRepository(mapAccessor{}, entity.ProductContent, logger.NewNopLogger())

	topics, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)

	exists, err := repo.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreErrorsAreNotSwallowed(t *testing.T) {
	repo := NewActiveChatRepository(failingAccessor{}, entity.ProductCoach, logger.NewNopLogger())
	_, err := repo.FindAll(context.Background())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, apperror.ErrCorruptCollection))
}

func TestActiveChatRoundTripLeavesFlagsUnset(t *testing.T) {
	acc := mapAccessor{}
	repo := NewActiveChatRepository(acc, entity.ProductCompliance, logger.NewNopLogger())

	err := repo.SaveAll(context.Background(), []*entity.ActiveChat{
		{Title: "Fair Housing Laws", Path: "/compliance/chat/1"},
		{Title: "RESPA Guidelines", Path: "/compliance/chat/2", Pinned: true},
	})
	require.NoError(t, err)

	raw := string(acc[constant.ActiveChatsKey(entity.ProductCompliance)])
	assert.Equal(t, `[{"title":"Fair Housing Laws","path":"/compliance/chat/1"},{"title":"RESPA Guidelines","path":"/compliance/chat/2","pinned":true}]`, raw)

	pinned, err := repo.FindOne(context.Background(), specification.ByPath{Path: "/compliance/chat/2"})
	require.NoError(t, err)
	require.NotNil(t, pinned)
	assert.True(t, pinned.Pinned)
	assert.False(t, pinned.Hidden)
}

func TestReadsLegacyTopicsWithoutIds(t *testing.T) {
	acc := mapAccessor{
		constant.TopicsKey(entity.ProductCompliance): []byte(`[{"icon":"⚖️","title":"Fair Housing Laws","description":"d","hidden":false,"pinned":true,"isNew":false}]`),
	}
	repo := NewTopicRepository(acc, entity.ProductCompliance, logger.NewNopLogger())

	first, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	second, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, first[0].Id, second[0].Id, "derived id is stable across loads")
	assert.True(t, first[0].Pinned)
}

func TestPreferenceFlags(t *testing.T) {
	acc := mapAccessor{}
	repo := NewPreferenceRepository(acc, logger.NewNopLogger())
	ctx := context.Background()

	visited, err := repo.GetFlag(ctx, constant.HasVisitedCoachKey)
	require.NoError(t, err)
	assert.False(t, visited)

	require.NoError(t, repo.SetFlag(ctx, constant.HasVisitedCoachKey, true))
	visited, err = repo.GetFlag(ctx, constant.HasVisitedCoachKey)
	require.NoError(t, err)
	assert.True(t, visited)

	acc[constant.AssetCountsKey] = []byte("garbage")
	counts, err := repo.GetAssetCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
