package mapper

import (
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/model"

	"github.com/google/uuid"
)

type AssetMapper struct{}

func NewAssetMapper() *AssetMapper {
	return &AssetMapper{}
}

func (m *AssetMapper) ToEntity(a *model.ContentAsset) *entity.ContentAsset {
	if a == nil {
		return nil
	}
	id, err := uuid.Parse(a.Id)
	if err != nil {
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte("asset:"+a.Id))
	}
	return &entity.ContentAsset{
		Id:        id,
		Type:      a.Type,
		Title:     a.Title,
		Subtitle:  a.Subtitle,
		Icon:      a.Icon,
		Content:   a.Content,
		Source:    a.Source,
		DateAdded: parseTime(a.DateAdded),
		Size:      a.Size,
		AIType:    entity.Product(a.AIType),
		Pinned:    a.Pinned,
		Hidden:    a.Hidden,
		IsNew:     a.IsNew,
	}
}

func (m *AssetMapper) ToModel(a *entity.ContentAsset) *model.ContentAsset {
	if a == nil {
		return nil
	}
	return &model.ContentAsset{
		Id:        a.Id.String(),
		Type:      a.Type,
		Title:     a.Title,
		Subtitle:  a.Subtitle,
		Icon:      a.Icon,
		Content:   a.Content,
		Source:    a.Source,
		DateAdded: formatTime(a.DateAdded),
		Size:      a.Size,
		AIType:    a.AIType.String(),
		Pinned:    a.Pinned,
		Hidden:    a.Hidden,
		IsNew:     a.IsNew,
	}
}

func (m *AssetMapper) ToEntities(models []*model.ContentAsset) []*entity.ContentAsset {
	out := make([]*entity.ContentAsset, 0, len(models))
	for _, a := range models {
		if a == nil {
			continue
		}
		out = append(out, m.ToEntity(a))
	}
	return out
}

func (m *AssetMapper) ToModels(assets []*entity.ContentAsset) []*model.ContentAsset {
	out := make([]*model.ContentAsset, 0, len(assets))
	for _, a := range assets {
		out = append(out, m.ToModel(a))
	}
	return out
}
