package models

import "time"

// Device represents a browser or terminal that owns its own notes and favorites
type Device struct {
	ID             string    `json:"id"`
	PassphraseHash string    `json:"passphrase_hash,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
