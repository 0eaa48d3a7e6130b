package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/idgen"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/pkg/metrics"
	"ai-realestate-be/internal/repository/specification"
	"ai-realestate-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	OutcomeReused  = "reused"
	OutcomeRevived = "revived"
	OutcomeCreated = "created"
)

type IChatSessionService interface {
	OpenOrCreate(ctx context.Context, p entity.Product, title string) (*dto.OpenSessionResponse, error)
	OpenTopic(ctx context.Context, p entity.Product, topicID uuid.UUID) (*dto.OpenSessionResponse, error)
	NewChat(ctx context.Context, p entity.Product, title string) (*dto.OpenSessionResponse, error)
	List(ctx context.Context, p entity.Product) ([]*dto.ChatResponse, error)
	TogglePin(ctx context.Context, p entity.Product, path string) (*dto.ChatResponse, error)
	Hide(ctx context.Context, p entity.Product, path string) (*dto.ChatResponse, error)
	Rename(ctx context.Context, p entity.Product, path, title string) (*dto.ChatResponse, error)
	Resolve(ctx context.Context, p entity.Product, path string) (*dto.ChatResponse, error)
}

type chatSessionService struct {
	uowFactory unitofwork.RepositoryFactory
	clock      *idgen.Clock
	logger     logger.ILogger
}

func NewChatSessionService(uowFactory unitofwork.RepositoryFactory, clock *idgen.Clock, log logger.ILogger) IChatSessionService {
	return &chatSessionService{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     log,
	}
}

// ChatPath builds the route of a chat session, e.g. "/coach/chat/1718000000000".
func ChatPath(p entity.Product, id string) string {
	return fmt.Sprintf("/%s/chat/%s", p, id)
}

// OpenOrCreate returns the visible session for title, revives a hidden one,
// or creates a new one, in that order. Concurrent calls for the same title
// are serialized inside this process only.
func (s *chatSessionService) OpenOrCreate(ctx context.Context, p entity.Product, title string) (*dto.OpenSessionResponse, error) {
	fields := make(map[string]string)
	title = singleLine(fields, "title", title, true)
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ActiveChatRepository(p)
	chats, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sameTitle := specification.Apply(chats, specification.ByChatTitle{Title: title})

	var (
		chat    *entity.ActiveChat
		outcome string
	)
	if visible := specification.Apply(sameTitle, specification.ByHidden[*entity.ActiveChat]{Hidden: false}); len(visible) > 0 {
		chat, outcome = visible[0], OutcomeReused
	} else if hidden := specification.Apply(sameTitle, specification.ByHidden[*entity.ActiveChat]{Hidden: true}); len(hidden) > 0 {
		chat, outcome = hidden[0], OutcomeRevived
		chat.Hidden = false
	} else {
		chat, outcome = s.newSession(p, title), OutcomeCreated
		chats = append(chats, chat)
	}

	if outcome != OutcomeReused {
		if err := repo.SaveAll(ctx, chats); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
	}

	metrics.ChatSessionsOpened.WithLabelValues(p.String(), outcome).Inc()
	s.logger.Info("ChatSessionService", "Chat session opened", map[string]interface{}{
		"product": p,
		"title":   title,
		"path":    chat.Path,
		"outcome": outcome,
	})

	return &dto.OpenSessionResponse{Path: chat.Path, Title: chat.Title, Outcome: outcome}, nil
}

func (s *chatSessionService) OpenTopic(ctx context.Context, p entity.Product, topicID uuid.UUID) (*dto.OpenSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository(p).FindOne(ctx, specification.ByTopicID{ID: topicID})
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, fmt.Errorf("%s topic %s: %w", p, topicID, apperror.ErrTopicNotFound)
	}
	return s.OpenOrCreate(ctx, p, topic.Title)
}

// NewChat always creates a session, even when one with the same title
// exists. A blank title becomes "New Chat".
func (s *chatSessionService) NewChat(ctx context.Context, p entity.Product, title string) (*dto.OpenSessionResponse, error) {
	fields := make(map[string]string)
	title = singleLine(fields, "title", title, false)
	if err := validationResult(fields); err != nil {
		return nil, err
	}
	if title == "" {
		title = constant.NewChatTitle
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ActiveChatRepository(p)
	chats, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	chat := s.newSession(p, title)
	if err := repo.SaveAll(ctx, append(chats, chat)); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	metrics.ChatSessionsOpened.WithLabelValues(p.String(), OutcomeCreated).Inc()
	return &dto.OpenSessionResponse{Path: chat.Path, Title: chat.Title, Outcome: OutcomeCreated}, nil
}

func (s *chatSessionService) newSession(p entity.Product, title string) *entity.ActiveChat {
	return &entity.ActiveChat{
		Title:     title,
		Path:      ChatPath(p, s.clock.NextString()),
		CreatedAt: time.Now().UTC(),
	}
}

func (s *chatSessionService) List(ctx context.Context, p entity.Product) ([]*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ActiveChatRepository(p).FindAll(ctx,
		specification.NotHidden[*entity.ActiveChat]{},
		specification.PinnedFirst[*entity.ActiveChat]{},
	)
	if err != nil {
		return nil, err
	}
	return toChatResponses(chats), nil
}

func (s *chatSessionService) TogglePin(ctx context.Context, p entity.Product, path string) (*dto.ChatResponse, error) {
	return s.mutate(ctx, p, path, func(c *entity.ActiveChat) bool {
		c.Pinned = !c.Pinned
		return true
	})
}

func (s *chatSessionService) Hide(ctx context.Context, p entity.Product, path string) (*dto.ChatResponse, error) {
	return s.mutate(ctx, p, path, func(c *entity.ActiveChat) bool {
		if c.Hidden {
			return false
		}
		c.Hidden = true
		return true
	})
}

// Rename ignores blank titles and returns the chat unchanged.
func (s *chatSessionService) Rename(ctx context.Context, p entity.Product, path, title string) (*dto.ChatResponse, error) {
	title = strings.TrimSpace(title)
	if strings.ContainsAny(title, "\r\n") {
		return nil, apperror.NewValidationError("title", "must be a single line")
	}
	return s.mutate(ctx, p, path, func(c *entity.ActiveChat) bool {
		if title == "" || title == c.Title {
			return false
		}
		c.Title = title
		return true
	})
}

func (s *chatSessionService) mutate(ctx context.Context, p entity.Product, path string, fn func(*entity.ActiveChat) bool) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ActiveChatRepository(p)
	chats, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := specification.Apply(chats, specification.ByPath{Path: path})
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s chat %s: %w", p, path, apperror.ErrChatNotFound)
	}
	target := matches[0]

	if !fn(target) {
		return toChatResponse(target), nil
	}
	if err := repo.SaveAll(ctx, chats); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toChatResponse(target), nil
}

// Resolve loads the session behind a deep link. Hidden sessions stay
// addressable. A corrupt collection is reset to an empty list, and both
// that case and an unknown path send the caller back to the dashboard.
func (s *chatSessionService) Resolve(ctx context.Context, p entity.Product, path string) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ActiveChatRepository(p)

	chats, err := repo.LoadStrict(ctx)
	if errors.Is(err, apperror.ErrCorruptCollection) {
		s.logger.Warn("ChatSessionService", "Resetting corrupt chat collection", map[string]interface{}{
			"product": p,
			"path":    path,
			"error":   err.Error(),
		})
		if resetErr := s.resetCorrupt(ctx, p); resetErr != nil {
			return nil, resetErr
		}
		return nil, &apperror.RedirectError{To: p.DashboardPath(), Reason: apperror.ErrCorruptCollection}
	}
	if err != nil {
		return nil, err
	}

	matches := specification.Apply(chats, specification.ByPath{Path: path})
	if len(matches) == 0 {
		return nil, &apperror.RedirectError{To: p.DashboardPath(), Reason: apperror.ErrChatNotFound}
	}
	return toChatResponse(matches[0]), nil
}

// resetCorrupt empties the chat collection under the write lock. The
// collection is read again first so a writer that replaced it meanwhile is
// not wiped.
func (s *chatSessionService) resetCorrupt(ctx context.Context, p entity.Product) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.ActiveChatRepository(p)
	_, err := repo.LoadStrict(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperror.ErrCorruptCollection) {
		return err
	}
	if err := repo.Reset(ctx); err != nil {
		return err
	}
	return uow.Commit()
}
