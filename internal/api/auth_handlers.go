package api

import (
	"errors"
	"net/http"

	"github.com/ignite/bulkmail/internal/auth"
	"github.com/ignite/bulkmail/internal/pkg/httputil"
	"github.com/ignite/bulkmail/internal/service/account"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account.
//
//	POST /api/auth/register
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in account.RegisterInput
	if !httputil.Decode(w, r, &in) {
		return
	}

	_, err := h.accounts.Register(r.Context(), in)
	if errors.Is(err, account.ErrUserExists) {
		httputil.BadRequest(w, "User already exists")
		return
	}
	if err != nil {
		httputil.InternalError(w, "Internal Server Error", err)
		return
	}
	httputil.Created(w, "User created successfully", nil)
}

// Login checks credentials and returns a session token, also set as a cookie.
//
//	POST /api/auth/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !httputil.Decode(w, r, &in) {
		return
	}

	sess, err := h.accounts.Login(r.Context(), in.Email, in.Password)
	switch {
	case errors.Is(err, account.ErrUnknownEmail):
		httputil.BadRequest(w, "Incorrect password or email")
		return
	case errors.Is(err, account.ErrBadPassword):
		httputil.BadRequest(w, "Invalid username or password")
		return
	case err != nil:
		httputil.InternalError(w, "Internal Server Error", err)
		return
	}

	h.auth.SetTokenCookie(w, sess.Token, sess.Identity.Expires)
	httputil.OK(w, "Successfully loggedIn", httputil.Payload{"token": sess.Token})
}

// Logout revokes the caller's token and clears the cookie.
//
//	POST /api/auth/logout
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	raw := auth.TokenFromRequest(r, h.auth.CookieName())
	if raw == "" {
		httputil.BadRequest(w, "User not logged in")
		return
	}
	id, err := h.auth.Issuer().Verify(r.Context(), raw)
	if err != nil {
		h.auth.ClearTokenCookie(w)
		httputil.BadRequest(w, "User not logged in")
		return
	}

	if err := h.accounts.Logout(r.Context(), id); err != nil {
		httputil.InternalError(w, "Internal Server Error", err)
		return
	}
	h.auth.ClearTokenCookie(w)
	httputil.OK(w, "Logout successful", nil)
}
