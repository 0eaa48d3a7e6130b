package model

// ActiveChat is the persisted shape of one entry of "<product>ActiveChats".
// Hidden and Pinned are pointers because fresh sessions leave them unset.
type ActiveChat struct {
	Title     string `json:"title"`
	Path      string `json:"path"`
	Hidden    *bool  `json:"hidden,omitempty"`
	Pinned    *bool  `json:"pinned,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
