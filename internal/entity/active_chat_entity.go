package entity

import "time"

// ActiveChat is a topic instance the user has opened. Title doubles as the
// display name and is the key used for session reuse.
type ActiveChat struct {
	Title     string
	Path      string
	Hidden    bool
	Pinned    bool
	CreatedAt time.Time
}

func (c *ActiveChat) IsHidden() bool { return c.Hidden }
func (c *ActiveChat) IsPinned() bool { return c.Pinned }
