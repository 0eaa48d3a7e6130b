package dto

import "time"

// StoreChangedMessage is published once per committed write batch.
type StoreChangedMessage struct {
	Keys       []string  `json:"keys"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StorageFrame is the WebSocket frame telling clients to reload. It carries
// no data on purpose: clients re-read what they display.
type StorageFrame struct {
	Type string `json:"type"`
}
