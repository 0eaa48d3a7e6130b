package service

import (
	"context"
	"testing"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingOverlayShownOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewOnboardingService(f.factory)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.ShowOverlay)

	require.NoError(t, svc.MarkVisited(ctx))
	require.NoError(t, svc.MarkVisited(ctx))
	assert.Equal(t, 1, f.notifier.count(), "second visit writes nothing")

	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.ShowOverlay)
}

func TestProductsCarryAssetCounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewOnboardingService(f.factory)
	assets := NewAssetService(f.factory, f.log)

	for i := 0; i < 2; i++ {
		_, err := assets.Add(ctx, entity.ProductCoach, &dto.CreateAssetRequest{Type: entity.AssetTypeRoleplay, Title: "Role-play"})
		require.NoError(t, err)
	}

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	byID := make(map[string]*dto.ProductResponse)
	for _, p := range products {
		byID[p.Id] = p
	}
	assert.Equal(t, 2, byID["coach"].AssetCount)
	assert.Equal(t, 0, byID["compliance"].AssetCount)
	assert.Equal(t, "/coach", byID["coach"].DashboardPath)
}
