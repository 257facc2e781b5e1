package domain

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is an inbound contact message. Unlike feedback it is submitted
// without an account, so it carries the sender's name and email itself.
type Inquiry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Replied   bool      `json:"replied"`
	CreatedAt time.Time `json:"created_at"`
}
