package mapper

import (
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ActiveChatToEntity(c *model.ActiveChat) *entity.ActiveChat {
	if c == nil {
		return nil
	}
	return &entity.ActiveChat{
		Title:     c.Title,
		Path:      c.Path,
		Hidden:    c.Hidden != nil && *c.Hidden,
		Pinned:    c.Pinned != nil && *c.Pinned,
		CreatedAt: parseTime(c.CreatedAt),
	}
}

// ActiveChatToModel leaves hidden/pinned unset until they have been toggled on
// at least once, matching how fresh sessions are stored.
func (m *ChatMapper) ActiveChatToModel(c *entity.ActiveChat) *model.ActiveChat {
	if c == nil {
		return nil
	}
	out := &model.ActiveChat{
		Title:     c.Title,
		Path:      c.Path,
		CreatedAt: formatTime(c.CreatedAt),
	}
	if c.Hidden {
		out.Hidden = boolPtr(true)
	}
	if c.Pinned {
		out.Pinned = boolPtr(true)
	}
	return out
}

func (m *ChatMapper) ActiveChatsToEntities(models []*model.ActiveChat) []*entity.ActiveChat {
	out := make([]*entity.ActiveChat, 0, len(models))
	for _, c := range models {
		if c == nil {
			continue
		}
		out = append(out, m.ActiveChatToEntity(c))
	}
	return out
}

func (m *ChatMapper) ActiveChatsToModels(chats []*entity.ActiveChat) []*model.ActiveChat {
	out := make([]*model.ActiveChat, 0, len(chats))
	for _, c := range chats {
		out = append(out, m.ActiveChatToModel(c))
	}
	return out
}

func boolPtr(b bool) *bool {
	return &b
}
