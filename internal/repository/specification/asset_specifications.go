package specification

import (
	"ai-realestate-be/internal/entity"

	"github.com/google/uuid"
)

type ByAssetID struct {
	ID uuid.UUID
}

func (s ByAssetID) Apply(items []*entity.ContentAsset) []*entity.ContentAsset {
	return filter(items, func(a *entity.ContentAsset) bool { return a.Id == s.ID })
}

type ByAssetType struct {
	Type string
}

func (s ByAssetType) Apply(items []*entity.ContentAsset) []*entity.ContentAsset {
	return filter(items, func(a *entity.ContentAsset) bool { return a.Type == s.Type })
}

type ByAIType struct {
	AIType entity.Product
}

func (s ByAIType) Apply(items []*entity.ContentAsset) []*entity.ContentAsset {
	return filter(items, func(a *entity.ContentAsset) bool { return a.AIType == s.AIType })
}
