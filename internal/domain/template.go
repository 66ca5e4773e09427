package domain

import "time"

// Template is a named, owner-scoped reusable message body. Content is never
// parsed; it is sent verbatim as the HTML part of an email.
type Template struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
