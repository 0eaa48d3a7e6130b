package service

import (
	"context"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/pkg/metrics"
	"ai-realestate-be/pkg/content"
	"ai-realestate-be/pkg/prompt"
)

type IContentService interface {
	ListTypes(ctx context.Context) []*dto.ContentTypeResponse
	Render(ctx context.Context, req *dto.RenderContentRequest) (*dto.RenderContentResponse, error)
	EnhancePrompt(ctx context.Context, req *dto.EnhancePromptRequest) (*dto.EnhancePromptResponse, error)
}

type contentService struct{}

func NewContentService() IContentService {
	return &contentService{}
}

func (s *contentService) ListTypes(ctx context.Context) []*dto.ContentTypeResponse {
	out := make([]*dto.ContentTypeResponse, 0, len(content.ContentTypes))
	for _, t := range content.ContentTypes {
		out = append(out, &dto.ContentTypeResponse{
			Id:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Icon:        t.Icon,
		})
	}
	return out
}

// Render never fails for a listing that passed validation; unknown type
// ids get the generic template.
func (s *contentService) Render(ctx context.Context, req *dto.RenderContentRequest) (*dto.RenderContentResponse, error) {
	listing := content.ListingDetails{
		Address:       req.Listing.Address,
		Price:         req.Listing.Price,
		Bedrooms:      req.Listing.Bedrooms,
		Bathrooms:     req.Listing.Bathrooms,
		SquareFootage: req.Listing.SquareFootage,
		Highlights:    req.Listing.Highlights,
	}

	rendered := content.RenderAllContent(req.ContentTypes, listing)
	for id := range rendered {
		label := id
		if !content.IsKnownType(id) {
			label = "generic"
		}
		metrics.ContentRendered.WithLabelValues(label).Inc()
	}
	return &dto.RenderContentResponse{Content: rendered}, nil
}

func (s *contentService) EnhancePrompt(ctx context.Context, req *dto.EnhancePromptRequest) (*dto.EnhancePromptResponse, error) {
	e := prompt.Enhance(req.Text)
	return &dto.EnhancePromptResponse{
		Original: e.Original,
		Enhanced: e.Enhanced,
		Category: e.Category,
	}, nil
}
