package contract

import (
	"context"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/repository/specification"
)

type ActiveChatRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification[*entity.ActiveChat]) ([]*entity.ActiveChat, error)
	FindOne(ctx context.Context, specs ...specification.Specification[*entity.ActiveChat]) (*entity.ActiveChat, error)
	// LoadStrict is FindAll without the corrupt-data recovery: it reports
	// ErrCorruptCollection so session resolution can reset the key.
	LoadStrict(ctx context.Context) ([]*entity.ActiveChat, error)
	SaveAll(ctx context.Context, chats []*entity.ActiveChat) error
	Reset(ctx context.Context) error
}
