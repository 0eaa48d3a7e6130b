package specification

import (
	"ai-realestate-be/internal/entity"

	"github.com/google/uuid"
)

type ByTopicID struct {
	ID uuid.UUID
}

func (s ByTopicID) Apply(items []*entity.Topic) []*entity.Topic {
	return filter(items, func(t *entity.Topic) bool { return t.Id == s.ID })
}

type ByTopicOrigin struct {
	Origin string
}

func (s ByTopicOrigin) Apply(items []*entity.Topic) []*entity.Topic {
	return filter(items, func(t *entity.Topic) bool { return t.Origin == s.Origin })
}
