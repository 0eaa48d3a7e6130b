package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/specification"
	"ai-realestate-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITopicService interface {
	List(ctx context.Context, p entity.Product) ([]*dto.TopicResponse, error)
	ListAll(ctx context.Context, p entity.Product) ([]*dto.TopicResponse, error)
	Add(ctx context.Context, p entity.Product, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	AddFromURL(ctx context.Context, p entity.Product, req *dto.CreateTopicFromURLRequest) (*dto.TopicResponse, error)
	Hide(ctx context.Context, p entity.Product, id uuid.UUID) (*dto.TopicResponse, error)
	Unhide(ctx context.Context, p entity.Product, id uuid.UUID) (*dto.TopicResponse, error)
	TogglePin(ctx context.Context, p entity.Product, id uuid.UUID) (*dto.TopicResponse, error)
	SeedDefaults(ctx context.Context) error
	ProjectPrompts(ctx context.Context, p entity.Product) (int, error)
}

type topicService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewTopicService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITopicService {
	return &topicService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *topicService) List(ctx context.Context, p entity.Product) ([]*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topics, err := uow.TopicRepository(p).FindAll(ctx,
		specification.NotHidden[*entity.Topic]{},
		specification.PinnedFirst[*entity.Topic]{},
	)
	if err != nil {
		return nil, err
	}
	return toTopicResponses(topics), nil
}

// ListAll includes hidden topics so admins can restore them.
func (s *topicService) ListAll(ctx context.Context, p entity.Product) ([]*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topics, err := uow.TopicRepository(p).FindAll(ctx, specification.PinnedFirst[*entity.Topic]{})
	if err != nil {
		return nil, err
	}
	return toTopicResponses(topics), nil
}

func (s *topicService) Add(ctx context.Context, p entity.Product, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	fields := make(map[string]string)
	title := singleLine(fields, "title", req.Title, true)
	description := singleLine(fields, "description", req.Description, true)
	icon := singleLine(fields, "icon", req.Icon, false)
	if err := validationResult(fields); err != nil {
		return nil, err
	}
	if icon == "" {
		icon = constant.DefaultTopicIcon
	}

	topic := &entity.Topic{
		Id:          uuid.New(),
		Icon:        icon,
		Title:       title,
		Description: description,
		Origin:      entity.TopicOriginUser,
		IsNew:       true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.appendTopic(ctx, p, topic); err != nil {
		return nil, err
	}

	s.logger.Info("TopicService", "Topic added", map[string]interface{}{
		"product": p,
		"id":      topic.Id,
		"title":   topic.Title,
	})
	return toTopicResponse(topic), nil
}

func (s *topicService) AddFromURL(ctx context.Context, p entity.Product, req *dto.CreateTopicFromURLRequest) (*dto.TopicResponse, error) {
	fields := make(map[string]string)
	raw := strings.TrimSpace(req.URL)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fields["url"] = "must be a valid http(s) URL"
	}
	title := singleLine(fields, "title", req.Title, false)
	description := singleLine(fields, "description", req.Description, false)
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	if title == "" {
		title = u.Hostname()
	}
	if description == "" {
		description = "Imported from " + raw
	}

	topic := &entity.Topic{
		Id:          uuid.New(),
		Icon:        "🔗",
		Title:       title,
		Description: description,
		URL:         raw,
		Origin:      entity.TopicOriginURL,
		IsNew:       true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.appendTopic(ctx, p, topic); err != nil {
		return nil, err
	}
	return toTopicResponse(topic), nil
}

func (s *topicService) appendTopic(ctx context.Context, p entity.Product, topic *entity.Topic) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.TopicRepository(p)
	topics, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	if err := repo.SaveAll(ctx, append(topics, topic)); err != nil {
		return err
	}
	return uow.Commit()
}

// Hide is idempotent; hiding a hidden topic writes nothing.
func (s *topicService) Hide(ctx context.Context, p entity.Product, id uuid.UUID) (*dto.TopicResponse, error) {
	return s.mutate(ctx, p, id, func(t *entity.Topic) bool {
		if t.Hidden {
			return false
		}
		t.Hidden = true
		return true
	})
}

func (s *topicService) Unhide(ctx context.Context, p entity.Product, id uuid.UUID) (*dto.TopicResponse, error) {
	return s.mutate(ctx, p, id, func(t *entity.Topic) bool {
		if !t.Hidden {
			return false
		}
		t.Hidden = false
		return true
	})
}

func (s *topicService) TogglePin(ctx context.Context, p entity.Product, id uuid.UUID) (*dto.TopicResponse, error) {
	return s.mutate(ctx, p, id, func(t *entity.Topic) bool {
		t.Pinned = !t.Pinned
		return true
	})
}

// mutate applies fn to one topic and persists the whole collection when fn
// reports a change.
func (s *topicService) mutate(ctx context.Context, p entity.Product, id uuid.UUID, fn func(*entity.Topic) bool) (*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.TopicRepository(p)
	topics, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := specification.Apply(topics, specification.ByTopicID{ID: id})
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s topic %s: %w", p, id, apperror.ErrTopicNotFound)
	}
	target := matches[0]

	if !fn(target) {
		return toTopicResponse(target), nil
	}
	if err := repo.SaveAll(ctx, topics); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toTopicResponse(target), nil
}

// SeedDefaults writes the default topic list of every product whose topic
// key does not exist yet. All seeds go out as one batch.
func (s *topicService) SeedDefaults(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	now := time.Now().UTC()
	seeded := make([]string, 0, len(entity.Products))
	for _, p := range entity.Products {
		repo := uow.TopicRepository(p)
		exists, err := repo.Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		defaults := constant.DefaultTopics[p]
		topics := make([]*entity.Topic, 0, len(defaults))
		for _, d := range defaults {
			topics = append(topics, &entity.Topic{
				Id:          uuid.New(),
				Icon:        d.Icon,
				Title:       d.Title,
				Description: d.Description,
				Origin:      entity.TopicOriginSeed,
				IsNew:       d.IsNew,
				CreatedAt:   now,
			})
		}
		if err := repo.SaveAll(ctx, topics); err != nil {
			return err
		}
		seeded = append(seeded, p.String())
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	if len(seeded) > 0 {
		s.logger.Info("TopicService", "Seeded default topics", map[string]interface{}{"products": seeded})
	}
	return nil
}

// ProjectPrompts materializes the product's prompt assets as topics keyed
// by asset id. Title, description and icon follow the asset; hidden and
// pinned stay as the user left them. Topics whose prompt is gone are
// hidden. Nothing is written when the projection is already current.
func (s *topicService) ProjectPrompts(ctx context.Context, p entity.Product) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	prompts, err := uow.AssetRepository(p).FindAll(ctx,
		specification.ByAssetType{Type: entity.AssetTypePrompt},
		specification.ByAIType{AIType: p},
	)
	if err != nil {
		return 0, err
	}

	repo := uow.TopicRepository(p)
	topics, err := repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	byID := make(map[uuid.UUID]*entity.Topic, len(topics))
	for _, t := range topics {
		byID[t.Id] = t
	}

	changed := 0
	live := make(map[uuid.UUID]bool, len(prompts))
	for _, a := range prompts {
		if live[a.Id] {
			continue
		}
		live[a.Id] = true

		icon := a.Icon
		if icon == "" {
			icon = constant.DefaultTopicIcon
		}

		if t, ok := byID[a.Id]; ok {
			if t.Title != a.Title || t.Description != a.Subtitle || t.Icon != icon {
				t.Title, t.Description, t.Icon = a.Title, a.Subtitle, icon
				changed++
			}
			continue
		}

		t := &entity.Topic{
			Id:          a.Id,
			Icon:        icon,
			Title:       a.Title,
			Description: a.Subtitle,
			Origin:      entity.TopicOriginPrompt,
			IsNew:       a.IsNew,
			CreatedAt:   a.DateAdded,
		}
		topics = append(topics, t)
		byID[t.Id] = t
		changed++
	}

	projected := specification.Apply(topics,
		specification.ByTopicOrigin{Origin: entity.TopicOriginPrompt},
		specification.NotHidden[*entity.Topic]{},
	)
	for _, t := range projected {
		if !live[t.Id] {
			t.Hidden = true
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}
	if err := repo.SaveAll(ctx, topics); err != nil {
		return 0, err
	}
	if err := uow.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("TopicService", "Projected prompt assets into topics", map[string]interface{}{
		"product": p,
		"changes": changed,
	})
	return changed, nil
}
