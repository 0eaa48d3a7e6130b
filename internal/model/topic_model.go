package model

// Topic is the persisted shape of one entry of "<product>Topics".
type Topic struct {
	Id          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Hidden      bool   `json:"hidden"`
	Pinned      bool   `json:"pinned"`
	IsNew       bool   `json:"isNew"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
