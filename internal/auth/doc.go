// Package auth issues and verifies the bearer tokens that identify callers.
//
// Tokens are HS256 JWTs whose subject is the user id. Logout revokes a
// token's jti until the token would have expired anyway; revocations live
// in Redis when a client is configured and in process memory otherwise.
package auth
