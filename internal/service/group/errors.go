package group

import "errors"

// Sentinel errors for the group service layer.
var (
	ErrNotFound     = errors.New("group not found")
	ErrNameRequired = errors.New("group name is required")
	ErrInvalidEmail = errors.New("invalid email address")
)
