package dto

import (
	"time"

	"github.com/google/uuid"
)

type SourceDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

type MessageResponse struct {
	Id        uuid.UUID   `json:"id"`
	Sender    string      `json:"sender"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Sources   []SourceDTO `json:"sources"`
}

type ViewResponse struct {
	ViewId           string            `json:"view_id"`
	Product          string            `json:"product"`
	Topic            string            `json:"topic"`
	ChatPath         string            `json:"chat_path"`
	Stage            int               `json:"stage"`
	GeneratedContent string            `json:"generated_content,omitempty"`
	Messages         []MessageResponse `json:"messages"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,notblank,max=4000"`
}

type SendMessageResponse struct {
	Sent             MessageResponse `json:"sent"`
	Reply            MessageResponse `json:"reply"`
	Stage            int             `json:"stage"`
	GeneratedContent string          `json:"generated_content,omitempty"`
}
