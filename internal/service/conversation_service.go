package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/memory"
	"ai-realestate-be/pkg/conversation"
)

type IConversationService interface {
	OpenView(ctx context.Context, p entity.Product, chatID string) (*dto.ViewResponse, error)
	GetView(ctx context.Context, viewID string) (*dto.ViewResponse, error)
	Send(ctx context.Context, viewID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	CloseView(ctx context.Context, viewID string) error
}

type conversationService struct {
	chatService IChatSessionService
	views       *memory.ViewRepository
	replyDelay  time.Duration
	logger      logger.ILogger
}

func NewConversationService(
	chatService IChatSessionService,
	views *memory.ViewRepository,
	replyDelay time.Duration,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		chatService: chatService,
		views:       views,
		replyDelay:  replyDelay,
		logger:      log,
	}
}

// OpenView mounts a fresh view for a stored session. Revisiting a chat
// always starts over with a new welcome message.
func (s *conversationService) OpenView(ctx context.Context, p entity.Product, chatID string) (*dto.ViewResponse, error) {
	chat, err := s.chatService.Resolve(ctx, p, ChatPath(p, chatID))
	if err != nil {
		return nil, err
	}

	view := conversation.NewView(p, chat.Title, chat.Path, s.replyDelay)
	s.views.Save(view)

	s.logger.Debug("ConversationService", "View opened", map[string]interface{}{
		"view_id": view.ID,
		"path":    chat.Path,
	})
	return toViewResponse(view), nil
}

func (s *conversationService) GetView(ctx context.Context, viewID string) (*dto.ViewResponse, error) {
	view, err := s.find(viewID)
	if err != nil {
		return nil, err
	}
	return toViewResponse(view), nil
}

// Send blocks for the simulated reply delay. The reply is discarded if the
// request is canceled or the view is closed meanwhile.
func (s *conversationService) Send(ctx context.Context, viewID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Content)
	if text == "" {
		return nil, apperror.NewValidationError("content", "is required")
	}

	view, err := s.find(viewID)
	if err != nil {
		return nil, err
	}

	sent, reply, err := view.Send(ctx, text)
	if err != nil {
		s.logger.Debug("ConversationService", "Reply dropped", map[string]interface{}{
			"view_id": viewID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &dto.SendMessageResponse{
		Sent:             toMessageResponse(sent),
		Reply:            toMessageResponse(reply),
		Stage:            view.Stage(),
		GeneratedContent: view.GeneratedContent(),
	}, nil
}

func (s *conversationService) CloseView(ctx context.Context, viewID string) error {
	if _, err := s.find(viewID); err != nil {
		return err
	}
	s.views.Delete(viewID)
	return nil
}

func (s *conversationService) find(viewID string) (*conversation.View, error) {
	view, ok := s.views.Get(viewID)
	if !ok {
		return nil, fmt.Errorf("view %s: %w", viewID, apperror.ErrViewNotFound)
	}
	return view, nil
}

func toViewResponse(v *conversation.View) *dto.ViewResponse {
	return &dto.ViewResponse{
		ViewId:           v.ID,
		Product:          v.Product.String(),
		Topic:            v.Topic,
		ChatPath:         v.ChatPath,
		Stage:            v.Stage(),
		GeneratedContent: v.GeneratedContent(),
		Messages:         toMessageResponses(v.Messages()),
	}
}
