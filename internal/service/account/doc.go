// Package account implements registration, login and logout.
//
// Passwords are stored as bcrypt hashes. Login hands back a signed session
// token from the configured TokenIssuer; logout revokes it.
package account
