package service

import (
	"context"
	"errors"
	"testing"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssetUpdatesCountsInOneBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssetService(f.factory, f.log)

	added, err := svc.Add(ctx, entity.ProductCompliance, &dto.CreateAssetRequest{
		Type:  entity.AssetTypePDF,
		Title: "State License Handbook",
	})
	require.NoError(t, err)
	assert.Equal(t, "📄", added.Icon)
	assert.Equal(t, entity.AssetSourceCreated, added.Source)

	require.Equal(t, 1, f.notifier.count())
	assert.Equal(t, []string{constant.AssetCountsKey, constant.AssetsKey(entity.ProductCompliance)}, f.notifier.last())

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.AssetCountsResponse{"compliance": 1, "content": 0, "coach": 0}, counts)

	require.NoError(t, svc.Delete(ctx, entity.ProductCompliance, added.Id))
	counts, err = svc.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts["compliance"])
}

func TestAddAssetValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewAssetService(f.factory, f.log)

	tests := []struct {
		name  string
		req   dto.CreateAssetRequest
		field string
	}{
		{"missing title", dto.CreateAssetRequest{Type: entity.AssetTypeVideo}, "title"},
		{"unknown type", dto.CreateAssetRequest{Type: "spreadsheet", Title: "Comps"}, "type"},
		{"multiline subtitle", dto.CreateAssetRequest{Type: entity.AssetTypeOther, Title: "Comps", Subtitle: "a\nb"}, "subtitle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), entity.ProductCoach, &tt.req)
			var verr *apperror.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
	assert.Zero(t, f.notifier.count())
}

func TestUploadAsset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssetService(f.factory, f.log)

	t.Run("text file keeps content", func(t *testing.T) {
		body := []byte("Always disclose.")
		res, err := svc.Upload(ctx, entity.ProductCompliance, &dto.UploadAssetRequest{
			FileName: "disclosure-rules.txt",
			Size:     int64(len(body)),
			Body:     body,
		})
		require.NoError(t, err)
		assert.Equal(t, "disclosure-rules", res.Title)
		assert.Equal(t, entity.AssetTypeGuidelines, res.Type)
		assert.Equal(t, "TXT · 16 B", res.Subtitle)
		assert.Equal(t, "Always disclose.", res.Content)
		assert.Equal(t, entity.AssetSourceUpload, res.Source)
	})

	t.Run("binary file has no content", func(t *testing.T) {
		res, err := svc.Upload(ctx, entity.ProductCoach, &dto.UploadAssetRequest{
			FileName: "Walkthrough.MP4",
			Size:     5_000_000,
			Body:     []byte{0x00, 0x01},
			Title:    "Listing walkthrough",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.AssetTypeVideo, res.Type)
		assert.Equal(t, "MP4 · 5.0 MB", res.Subtitle)
		assert.Empty(t, res.Content)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := svc.Upload(ctx, entity.ProductCoach, &dto.UploadAssetRequest{FileName: "virus.exe"})
		assert.ErrorIs(t, err, apperror.ErrUnsupportedFile)
	})
}

func TestUpdateAsset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssetService(f.factory, f.log)

	added, err := svc.AddPrompt(ctx, entity.ProductContent, &dto.CreatePromptRequest{
		Title:       "Price Reduction",
		Description: "Announce a new price",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetTypePrompt, added.Type)

	pinned := true
	updated, err := svc.Update(ctx, entity.ProductContent, &dto.UpdateAssetRequest{Id: added.Id, Pinned: &pinned})
	require.NoError(t, err)
	assert.True(t, updated.Pinned)
	assert.Equal(t, "Price Reduction", updated.Title)

	_, err = svc.Update(ctx, entity.ProductContent, &dto.UpdateAssetRequest{Id: uuid.New(), Pinned: &pinned})
	assert.ErrorIs(t, err, apperror.ErrAssetNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, entity.ProductContent, uuid.New()), apperror.ErrAssetNotFound)
}

func TestListAssetsPinnedFirstAndPaged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssetService(f.factory, f.log)

	var ids []uuid.UUID
	for _, title := range []string{"A", "B", "C"} {
		res, err := svc.Add(ctx, entity.ProductCoach, &dto.CreateAssetRequest{Type: entity.AssetTypeOther, Title: title})
		require.NoError(t, err)
		ids = append(ids, res.Id)
	}
	pinned := true
	_, err := svc.Update(ctx, entity.ProductCoach, &dto.UpdateAssetRequest{Id: ids[2], Pinned: &pinned})
	require.NoError(t, err)

	tests := []struct {
		name          string
		limit, offset int
		want          []string
	}{
		{"all", 0, 0, []string{"C", "A", "B"}},
		{"first page", 2, 0, []string{"C", "A"}},
		{"second page", 2, 2, []string{"B"}},
		{"past the end", 2, 5, []string{}},
		{"negative clamps", -1, -3, []string{"C", "A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.List(ctx, entity.ProductCoach, tt.limit, tt.offset)
			require.NoError(t, err)
			titles := []string{}
			for _, a := range list {
				titles = append(titles, a.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}
