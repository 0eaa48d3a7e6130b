package dto

import "time"

type ChatResponse struct {
	Title     string     `json:"title"`
	Path      string     `json:"path"`
	Hidden    bool       `json:"hidden"`
	Pinned    bool       `json:"pinned"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type OpenChatRequest struct {
	Title string `json:"title" validate:"required,notblank,singleline,max=120"`
}

type NewChatRequest struct {
	Title string `json:"title" validate:"singleline,max=120"`
}

// RenameChatRequest is not validated: a blank title is a silent no-op.
type RenameChatRequest struct {
	Title string `json:"title"`
}
