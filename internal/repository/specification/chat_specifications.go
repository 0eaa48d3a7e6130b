package specification

import "ai-realestate-be/internal/entity"

// ByChatTitle matches titles exactly; session reuse is keyed on what the
// user sees.
type ByChatTitle struct {
	Title string
}

func (s ByChatTitle) Apply(items []*entity.ActiveChat) []*entity.ActiveChat {
	return filter(items, func(c *entity.ActiveChat) bool { return c.Title == s.Title })
}

type ByPath struct {
	Path string
}

func (s ByPath) Apply(items []*entity.ActiveChat) []*entity.ActiveChat {
	return filter(items, func(c *entity.ActiveChat) bool { return c.Path == s.Path })
}
