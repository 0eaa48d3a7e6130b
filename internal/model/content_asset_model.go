package model

// ContentAsset is the persisted shape of one entry of "<product>Assets".
type ContentAsset struct {
	Id        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Icon      string `json:"icon"`
	Content   string `json:"content,omitempty"`
	Source    string `json:"source"`
	DateAdded string `json:"dateAdded"`
	Size      *int64 `json:"size,omitempty"`
	AIType    string `json:"aiType"`
	Pinned    bool   `json:"pinned"`
	Hidden    bool   `json:"hidden"`
	IsNew     bool   `json:"isNew"`
}
