package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssetResponse struct {
	Id        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Icon      string    `json:"icon"`
	Content   string    `json:"content,omitempty"`
	Source    string    `json:"source"`
	DateAdded time.Time `json:"date_added"`
	Size      *int64    `json:"size,omitempty"`
	AIType    string    `json:"ai_type"`
	Pinned    bool      `json:"pinned"`
	Hidden    bool      `json:"hidden"`
	IsNew     bool      `json:"is_new"`
}

type CreateAssetRequest struct {
	Type     string `json:"type" validate:"required,oneof=pdf guidelines roleplay video other prompt"`
	Title    string `json:"title" validate:"required,notblank,singleline,max=200"`
	Subtitle string `json:"subtitle" validate:"singleline,max=300"`
	Icon     string `json:"icon" validate:"max=16"`
	Content  string `json:"content"`
	Source   string `json:"source" validate:"omitempty,oneof=upload created google-drive dropbox"`
}

type CreatePromptRequest struct {
	Title       string `json:"title" validate:"required,notblank,singleline,max=120"`
	Description string `json:"description" validate:"required,notblank,singleline,max=500"`
	Icon        string `json:"icon" validate:"max=16"`
	Content     string `json:"content"`
}

// UpdateAssetRequest only touches the fields that are set.
type UpdateAssetRequest struct {
	Id       uuid.UUID
	Title    *string `json:"title" validate:"omitempty,notblank,singleline,max=200"`
	Subtitle *string `json:"subtitle" validate:"omitempty,singleline,max=300"`
	Icon     *string `json:"icon" validate:"omitempty,max=16"`
	Content  *string `json:"content"`
	Pinned   *bool   `json:"pinned"`
	Hidden   *bool   `json:"hidden"`
}

type UploadAssetRequest struct {
	FileName string
	Size     int64
	Body     []byte
	Title    string `validate:"singleline,max=200"`
}

type AssetCountsResponse map[string]int
