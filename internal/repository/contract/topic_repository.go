package contract

import (
	"context"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/repository/specification"
)

type TopicRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification[*entity.Topic]) ([]*entity.Topic, error)
	FindOne(ctx context.Context, specs ...specification.Specification[*entity.Topic]) (*entity.Topic, error)
	Exists(ctx context.Context) (bool, error)
	SaveAll(ctx context.Context, topics []*entity.Topic) error
}
