package contract

import (
	"context"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/repository/specification"
)

type AssetRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification[*entity.ContentAsset]) ([]*entity.ContentAsset, error)
	FindOne(ctx context.Context, specs ...specification.Specification[*entity.ContentAsset]) (*entity.ContentAsset, error)
	Count(ctx context.Context, specs ...specification.Specification[*entity.ContentAsset]) (int, error)
	SaveAll(ctx context.Context, assets []*entity.ContentAsset) error
}
