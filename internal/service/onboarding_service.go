package service

import (
	"context"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/repository/unitofwork"
)

type IOnboardingService interface {
	Status(ctx context.Context) (*dto.OnboardingResponse, error)
	MarkVisited(ctx context.Context) error
	Products(ctx context.Context) ([]*dto.ProductResponse, error)
}

type onboardingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOnboardingService(uowFactory unitofwork.RepositoryFactory) IOnboardingService {
	return &onboardingService{uowFactory: uowFactory}
}

// Status tells the coach dashboard whether to show the one-time overlay.
func (s *onboardingService) Status(ctx context.Context) (*dto.OnboardingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	visited, err := uow.PreferenceRepository().GetFlag(ctx, constant.HasVisitedCoachKey)
	if err != nil {
		return nil, err
	}
	return &dto.OnboardingResponse{ShowOverlay: !visited}, nil
}

func (s *onboardingService) MarkVisited(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prefs := uow.PreferenceRepository()
	visited, err := prefs.GetFlag(ctx, constant.HasVisitedCoachKey)
	if err != nil || visited {
		return err
	}
	return prefs.SetFlag(ctx, constant.HasVisitedCoachKey, true)
}

// Products lists the suite with the cached asset counts.
func (s *onboardingService) Products(ctx context.Context) ([]*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counts, err := uow.PreferenceRepository().GetAssetCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProductResponse, 0, len(entity.Products))
	for _, p := range entity.Products {
		out = append(out, &dto.ProductResponse{
			Id:            p.String(),
			Name:          p.DisplayName(),
			DashboardPath: p.DashboardPath(),
			AssetCount:    counts[p.String()],
		})
	}
	return out, nil
}
