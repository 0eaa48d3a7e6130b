package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicOriginSeed   = "seed"
	TopicOriginUser   = "user"
	TopicOriginURL    = "url"
	TopicOriginPrompt = "prompt"
)

// Topic is a suggested conversation starter shown on a product dashboard.
// Prompt-projected topics share their Id with the source asset.
type Topic struct {
	Id          uuid.UUID
	Icon        string
	Title       string
	Description string
	URL         string
	Origin      string
	Hidden      bool
	Pinned      bool
	IsNew       bool
	CreatedAt   time.Time
}

func (t *Topic) IsHidden() bool { return t.Hidden }
func (t *Topic) IsPinned() bool { return t.Pinned }
