package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProductResponse struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	DashboardPath string `json:"dashboard_path"`
	AssetCount    int    `json:"asset_count"`
}

type TopicResponse struct {
	Id          uuid.UUID  `json:"id"`
	Icon        string     `json:"icon"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url,omitempty"`
	Origin      string     `json:"origin"`
	Hidden      bool       `json:"hidden"`
	Pinned      bool       `json:"pinned"`
	IsNew       bool       `json:"is_new"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type CreateTopicRequest struct {
	Icon        string `json:"icon" validate:"max=16,singleline"`
	Title       string `json:"title" validate:"required,notblank,singleline,max=120"`
	Description string `json:"description" validate:"required,notblank,singleline,max=500"`
}

type CreateTopicFromURLRequest struct {
	URL         string `json:"url" validate:"required,http_url"`
	Title       string `json:"title" validate:"singleline,max=120"`
	Description string `json:"description" validate:"singleline,max=500"`
}

type OpenSessionResponse struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Outcome string `json:"outcome"`
}
