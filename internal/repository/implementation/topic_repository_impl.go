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

type TopicRepositoryImpl struct {
	acc    Accessor
	key    string
	logger logger.ILogger
	mapper *mapper.TopicMapper
}

func NewTopicRepository(acc Accessor, product entity.Product, log logger.ILogger) contract.TopicRepository {
	return &TopicRepositoryImpl{
		acc:    acc,
		key:    constant.TopicsKey(product),
		logger: log,
		mapper: mapper.NewTopicMapper(),
	}
}

func (r *TopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[*entity.Topic]) ([]*entity.Topic, error) {
	models, err := loadCollection[model.Topic](ctx, r.acc, r.key, r.logger)
	if err != nil {
		return nil, err
	}
	return specification.Apply(r.mapper.ToEntities(models), specs...), nil
}

func (r *TopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification[*entity.Topic]) (*entity.Topic, error) {
	topics, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, nil
	}
	return topics[0], nil
}

func (r *TopicRepositoryImpl) Exists(ctx context.Context) (bool, error) {
	_, found, err := r.acc.Get(ctx, r.key)
	return found, err
}

func (r *TopicRepositoryImpl) SaveAll(ctx context.Context, topics []*entity.Topic) error {
	return saveCollection(ctx, r.acc, r.key, r.mapper.ToModels(topics))
}
