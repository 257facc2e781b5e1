package domain

import (
	"time"

	"github.com/google/uuid"
)

type Party struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Abbreviation string     `json:"abbreviation,omitempty"`
	LogoURL      string     `json:"logo_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

type PartyMember struct {
	ID        uuid.UUID  `json:"id"`
	PartyID   uuid.UUID  `json:"party_id"`
	Name      string     `json:"name"`
	Biography string     `json:"biography,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
