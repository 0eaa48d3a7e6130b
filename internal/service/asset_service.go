package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/specification"
	"ai-realestate-be/internal/repository/unitofwork"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type IAssetService interface {
	List(ctx context.Context, p entity.Product, limit, offset int) ([]*dto.AssetResponse, error)
	Add(ctx context.Context, p entity.Product, req *dto.CreateAssetRequest) (*dto.AssetResponse, error)
	AddPrompt(ctx context.Context, p entity.Product, req *dto.CreatePromptRequest) (*dto.AssetResponse, error)
	Update(ctx context.Context, p entity.Product, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	Delete(ctx context.Context, p entity.Product, id uuid.UUID) error
	Upload(ctx context.Context, p entity.Product, req *dto.UploadAssetRequest) (*dto.AssetResponse, error)
	Counts(ctx context.Context) (dto.AssetCountsResponse, error)
}

var uploadTypes = map[string]string{
	".pdf":  entity.AssetTypePDF,
	".mp4":  entity.AssetTypeVideo,
	".mov":  entity.AssetTypeVideo,
	".webm": entity.AssetTypeVideo,
	".txt":  entity.AssetTypeGuidelines,
	".md":   entity.AssetTypeGuidelines,
	".doc":  entity.AssetTypeGuidelines,
	".docx": entity.AssetTypeGuidelines,
}

// textExtensions are read into the asset content on upload.
var textExtensions = map[string]bool{".txt": true, ".md": true}

var assetIcons = map[string]string{
	entity.AssetTypePDF:        "📄",
	entity.AssetTypeGuidelines: "📘",
	entity.AssetTypeRoleplay:   "🎭",
	entity.AssetTypeVideo:      "🎥",
	entity.AssetTypeOther:      "📁",
	entity.AssetTypePrompt:     "💬",
}

type assetService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAssetService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAssetService {
	return &assetService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// List pages through the product's assets, pinned first. A limit of 0
// returns everything from offset on.
func (s *assetService) List(ctx context.Context, p entity.Product, limit, offset int) ([]*dto.AssetResponse, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assets, err := uow.AssetRepository(p).FindAll(ctx,
		specification.PinnedFirst[*entity.ContentAsset]{},
		specification.Pagination[*entity.ContentAsset]{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}
	return toAssetResponses(assets), nil
}

func (s *assetService) Add(ctx context.Context, p entity.Product, req *dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	fields := make(map[string]string)
	title := singleLine(fields, "title", req.Title, true)
	subtitle := singleLine(fields, "subtitle", req.Subtitle, false)
	if _, ok := assetIcons[req.Type]; !ok {
		fields["type"] = "is not a known asset type"
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = entity.AssetSourceCreated
	}

	asset := s.newAsset(p, req.Type, title, subtitle, req.Icon, source)
	asset.Content = req.Content
	return s.insert(ctx, p, asset)
}

// AddPrompt creates a prompt asset; the topic projection turns it into a
// dashboard topic of the same product.
func (s *assetService) AddPrompt(ctx context.Context, p entity.Product, req *dto.CreatePromptRequest) (*dto.AssetResponse, error) {
	fields := make(map[string]string)
	title := singleLine(fields, "title", req.Title, true)
	description := singleLine(fields, "description", req.Description, true)
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	asset := s.newAsset(p, entity.AssetTypePrompt, title, description, req.Icon, entity.AssetSourceCreated)
	asset.Content = req.Content
	return s.insert(ctx, p, asset)
}

func (s *assetService) Upload(ctx context.Context, p entity.Product, req *dto.UploadAssetRequest) (*dto.AssetResponse, error) {
	ext := strings.ToLower(filepath.Ext(req.FileName))
	assetType, ok := uploadTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", req.FileName, apperror.ErrUnsupportedFile)
	}

	fields := make(map[string]string)
	title := singleLine(fields, "title", req.Title, false)
	if err := validationResult(fields); err != nil {
		return nil, err
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(req.FileName), filepath.Ext(req.FileName))
	}

	size := req.Size
	subtitle := fmt.Sprintf("%s · %s", strings.ToUpper(strings.TrimPrefix(ext, ".")), humanize.Bytes(uint64(size)))

	asset := s.newAsset(p, assetType, title, subtitle, "", entity.AssetSourceUpload)
	asset.Size = &size
	if textExtensions[ext] && utf8.Valid(req.Body) {
		asset.Content = string(req.Body)
	}
	return s.insert(ctx, p, asset)
}

func (s *assetService) newAsset(p entity.Product, assetType, title, subtitle, icon, source string) *entity.ContentAsset {
	if icon == "" {
		icon = assetIcons[assetType]
	}
	return &entity.ContentAsset{
		Id:        uuid.New(),
		Type:      assetType,
		Title:     title,
		Subtitle:  subtitle,
		Icon:      icon,
		Source:    source,
		DateAdded: time.Now().UTC(),
		AIType:    p,
		IsNew:     true,
	}
}

func (s *assetService) insert(ctx context.Context, p entity.Product, asset *entity.ContentAsset) (*dto.AssetResponse, error) {
	err := s.save(ctx, p, func(assets []*entity.ContentAsset) ([]*entity.ContentAsset, error) {
		return append(assets, asset), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AssetService", "Asset added", map[string]interface{}{
		"product": p,
		"id":      asset.Id,
		"type":    asset.Type,
	})
	return toAssetResponse(asset), nil
}

func (s *assetService) Update(ctx context.Context, p entity.Product, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	fields := make(map[string]string)
	if req.Title != nil {
		*req.Title = singleLine(fields, "title", *req.Title, true)
	}
	if req.Subtitle != nil {
		*req.Subtitle = singleLine(fields, "subtitle", *req.Subtitle, false)
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	var updated *entity.ContentAsset
	err := s.save(ctx, p, func(assets []*entity.ContentAsset) ([]*entity.ContentAsset, error) {
		matches := specification.Apply(assets, specification.ByAssetID{ID: req.Id})
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s asset %s: %w", p, req.Id, apperror.ErrAssetNotFound)
		}
		a := matches[0]
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Subtitle != nil {
			a.Subtitle = *req.Subtitle
		}
		if req.Icon != nil {
			a.Icon = *req.Icon
		}
		if req.Content != nil {
			a.Content = *req.Content
		}
		if req.Pinned != nil {
			a.Pinned = *req.Pinned
		}
		if req.Hidden != nil {
			a.Hidden = *req.Hidden
		}
		updated = a
		return assets, nil
	})
	if err != nil {
		return nil, err
	}
	return toAssetResponse(updated), nil
}

func (s *assetService) Delete(ctx context.Context, p entity.Product, id uuid.UUID) error {
	return s.save(ctx, p, func(assets []*entity.ContentAsset) ([]*entity.ContentAsset, error) {
		kept := make([]*entity.ContentAsset, 0, len(assets))
		for _, a := range assets {
			if a.Id != id {
				kept = append(kept, a)
			}
		}
		if len(kept) == len(assets) {
			return nil, fmt.Errorf("%s asset %s: %w", p, id, apperror.ErrAssetNotFound)
		}
		return kept, nil
	})
}

// save rewrites the product's assets and the assetCounts cache in one unit
// of work so subscribers see a single change notification.
func (s *assetService) save(ctx context.Context, p entity.Product, fn func([]*entity.ContentAsset) ([]*entity.ContentAsset, error)) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.AssetRepository(p)
	assets, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}

	next, err := fn(assets)
	if err != nil {
		return err
	}
	if err := repo.SaveAll(ctx, next); err != nil {
		return err
	}

	counts := make(map[string]int, len(entity.Products))
	for _, q := range entity.Products {
		n, err := uow.AssetRepository(q).Count(ctx)
		if err != nil {
			return err
		}
		counts[q.String()] = n
	}
	if err := uow.PreferenceRepository().SaveAssetCounts(ctx, counts); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *assetService) Counts(ctx context.Context) (dto.AssetCountsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counts, err := uow.PreferenceRepository().GetAssetCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make(dto.AssetCountsResponse, len(entity.Products))
	for _, p := range entity.Products {
		out[p.String()] = counts[p.String()]
	}
	return out, nil
}
