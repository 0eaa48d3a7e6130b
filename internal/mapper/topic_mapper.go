package mapper

import (
	"time"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/model"

	"github.com/google/uuid"
)

type TopicMapper struct{}

func NewTopicMapper() *TopicMapper {
	return &TopicMapper{}
}

func (m *TopicMapper) ToEntity(t *model.Topic) *entity.Topic {
	if t == nil {
		return nil
	}
	// Entries written before ids were generated get a stable id derived from
	// the title so repeated loads agree on it.
	id, err := uuid.Parse(t.Id)
	if err != nil {
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte("topic:"+t.Title))
	}
	return &entity.Topic{
		Id:          id,
		Icon:        t.Icon,
		Title:       t.Title,
		Description: t.Description,
		URL:         t.URL,
		Origin:      t.Origin,
		Hidden:      t.Hidden,
		Pinned:      t.Pinned,
		IsNew:       t.IsNew,
		CreatedAt:   parseTime(t.CreatedAt),
	}
}

func (m *TopicMapper) ToModel(t *entity.Topic) *model.Topic {
	if t == nil {
		return nil
	}
	return &model.Topic{
		Id:          t.Id.String(),
		Icon:        t.Icon,
		Title:       t.Title,
		Description: t.Description,
		URL:         t.URL,
		Origin:      t.Origin,
		Hidden:      t.Hidden,
		Pinned:      t.Pinned,
		IsNew:       t.IsNew,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

func (m *TopicMapper) ToEntities(models []*model.Topic) []*entity.Topic {
	out := make([]*entity.Topic, 0, len(models))
	for _, t := range models {
		if t == nil {
			continue
		}
		out = append(out, m.ToEntity(t))
	}
	return out
}

func (m *TopicMapper) ToModels(topics []*entity.Topic) []*model.Topic {
	out := make([]*model.Topic, 0, len(topics))
	for _, t := range topics {
		out = append(out, m.ToModel(t))
	}
	return out
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
