package service

import (
	"time"

	"ai-realestate-be/internal/dto"
	"ai-realestate-be/internal/entity"
)

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toTopicResponse(t *entity.Topic) *dto.TopicResponse {
	return &dto.TopicResponse{
		Id:          t.Id,
		Icon:        t.Icon,
		Title:       t.Title,
		Description: t.Description,
		URL:         t.URL,
		Origin:      t.Origin,
		Hidden:      t.Hidden,
		Pinned:      t.Pinned,
		IsNew:       t.IsNew,
		CreatedAt:   timePtr(t.CreatedAt),
	}
}

func toTopicResponses(topics []*entity.Topic) []*dto.TopicResponse {
	out := make([]*dto.TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}
	return out
}

func toChatResponse(c *entity.ActiveChat) *dto.ChatResponse {
	return &dto.ChatResponse{
		Title:     c.Title,
		Path:      c.Path,
		Hidden:    c.Hidden,
		Pinned:    c.Pinned,
		CreatedAt: timePtr(c.CreatedAt),
	}
}

func toChatResponses(chats []*entity.ActiveChat) []*dto.ChatResponse {
	out := make([]*dto.ChatResponse, 0, len(chats))
	for _, c := range chats {
		out = append(out, toChatResponse(c))
	}
	return out
}

func toAssetResponse(a *entity.ContentAsset) *dto.AssetResponse {
	return &dto.AssetResponse{
		Id:        a.Id,
		Type:      a.Type,
		Title:     a.Title,
		Subtitle:  a.Subtitle,
		Icon:      a.Icon,
		Content:   a.Content,
		Source:    a.Source,
		DateAdded: a.DateAdded,
		Size:      a.Size,
		AIType:    a.AIType.String(),
		Pinned:    a.Pinned,
		Hidden:    a.Hidden,
		IsNew:     a.IsNew,
	}
}

func toAssetResponses(assets []*entity.ContentAsset) []*dto.AssetResponse {
	out := make([]*dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetResponse(a))
	}
	return out
}

func toMessageResponse(m entity.Message) dto.MessageResponse {
	sources := make([]dto.SourceDTO, 0, len(m.Sources))
	for _, s := range m.Sources {
		sources = append(sources, dto.SourceDTO{Title: s.Title, Content: s.Content, URL: s.URL})
	}
	return dto.MessageResponse{
		Id:        m.Id,
		Sender:    m.Sender,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Sources:   sources,
	}
}

func toMessageResponses(msgs []entity.Message) []dto.MessageResponse {
	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}
