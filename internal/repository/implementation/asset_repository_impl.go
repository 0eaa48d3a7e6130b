package implementation

import (
	"context"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/mapper"
	"ai-realestate-be/internal/model"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/contract"
	"ai-realestate-be/internal/repository/specification"
)

type AssetRepositoryImpl struct {
	acc    Accessor
	key    string
	logger logger.ILogger
	mapper *mapper.AssetMapper
}

func NewAssetRepository(acc Accessor, product entity.Product, log logger.ILogger) contract.AssetRepository {
	return &AssetRepositoryImpl{
		acc:    acc,
		key:    constant.AssetsKey(product),
		logger: log,
		mapper: mapper.NewAssetMapper(),
	}
}

func (r *AssetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[*entity.ContentAsset]) ([]*entity.ContentAsset, error) {
	models, err := loadCollection[model.ContentAsset](ctx, r.acc, r.key, r.logger)
	if err != nil {
		return nil, err
	}
	return specification.Apply(r.mapper.ToEntities(models), specs...), nil
}

func (r *AssetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification[*entity.ContentAsset]) (*entity.ContentAsset, error) {
	assets, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, nil
	}
	return assets[0], nil
}

func (r *AssetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification[*entity.ContentAsset]) (int, error) {
	assets, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return len(assets), nil
}

func (r *AssetRepositoryImpl) SaveAll(ctx context.Context, assets []*entity.ContentAsset) error {
	return saveCollection(ctx, r.acc, r.key, r.mapper.ToModels(assets))
}
