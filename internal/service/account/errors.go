package account

import "errors"

// Sentinel errors for the account service layer.
var (
	ErrNotFound     = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrUnknownEmail = errors.New("unknown email")
	ErrBadPassword  = errors.New("wrong password")
)
