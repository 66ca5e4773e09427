package domain

import "time"

// User is an account holder. Every Group, Template and SentRecord is owned
// by exactly one User.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Identity is the authenticated caller as established by a verified token.
type Identity struct {
	UserID  string
	Email   string
	TokenID string
	Expires time.Time
}
