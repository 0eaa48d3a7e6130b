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

type ActiveChatRepositoryImpl struct {
	acc    Accessor
	key    string
	logger logger.ILogger
	mapper *mapper.ChatMapper
}

func NewActiveChatRepository(acc Accessor, product entity.Product, log logger.ILogger) contract.ActiveChatRepository {
	return &ActiveChatRepositoryImpl{
		acc:    acc,
		key:    constant.ActiveChatsKey(product),
		logger: log,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ActiveChatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[*entity.ActiveChat]) ([]*entity.ActiveChat, error) {
	models, err := loadCollection[model.ActiveChat](ctx, r.acc, r.key, r.logger)
	if err != nil {
		return nil, err
	}
	return specification.Apply(r.mapper.ActiveChatsToEntities(models), specs...), nil
}

func (r *ActiveChatRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification[*entity.ActiveChat]) (*entity.ActiveChat, error) {
	chats, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return nil, nil
	}
	return chats[0], nil
}

func (r *ActiveChatRepositoryImpl) LoadStrict(ctx context.Context) ([]*entity.ActiveChat, error) {
	models, err := loadCollectionStrict[model.ActiveChat](ctx, r.acc, r.key)
	if err != nil {
		return nil, err
	}
	return r.mapper.ActiveChatsToEntities(models), nil
}

func (r *ActiveChatRepositoryImpl) SaveAll(ctx context.Context, chats []*entity.ActiveChat) error {
	return saveCollection(ctx, r.acc, r.key, r.mapper.ActiveChatsToModels(chats))
}

func (r *ActiveChatRepositoryImpl) Reset(ctx context.Context) error {
	return saveCollection[model.ActiveChat](ctx, r.acc, r.key, nil)
}
