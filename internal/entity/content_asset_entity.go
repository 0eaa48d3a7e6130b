package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssetTypePDF        = "pdf"
	AssetTypeGuidelines = "guidelines"
	AssetTypeRoleplay   = "roleplay"
	AssetTypeVideo      = "video"
	AssetTypeOther      = "other"
	AssetTypePrompt     = "prompt"
)

const (
	AssetSourceUpload      = "upload"
	AssetSourceCreated     = "created"
	AssetSourceGoogleDrive = "google-drive"
	AssetSourceDropbox     = "dropbox"
)

// ContentAsset is admin-managed training material. Assets of type prompt
// are also projected into the topic registry of their AIType.
type ContentAsset struct {
	Id        uuid.UUID
	Type      string
	Title     string
	Subtitle  string
	Icon      string
	Content   string
	Source    string
	DateAdded time.Time
	Size      *int64
	AIType    Product
	Pinned    bool
	Hidden    bool
	IsNew     bool
}

func (a *ContentAsset) IsHidden() bool { return a.Hidden }
func (a *ContentAsset) IsPinned() bool { return a.Pinned }

func (a *ContentAsset) IsPrompt() bool { return a.Type == AssetTypePrompt }
