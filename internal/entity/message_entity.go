package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type Source struct {
	Title   string
	Content string
	URL     string
}

// Message only lives as long as the chat view that produced it.
type Message struct {
	Id        uuid.UUID
	Sender    string
	Content   string
	Timestamp time.Time
	Sources   []Source
}
