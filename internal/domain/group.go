package domain

import "time"

// Group is a named, owner-scoped list of recipient email addresses.
// Emails keeps the order in which the owner supplied them.
type Group struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Emails    []string  `json:"emails" db:"emails"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
