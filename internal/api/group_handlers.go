package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/bulkmail/internal/pkg/httputil"
	"github.com/ignite/bulkmail/internal/service/group"
)

// CreateGroup adds a contact group for the caller.
//
//	POST /api/groups
func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var in group.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}

	g, err := h.groups.Create(r.Context(), owner, in)
	if errors.Is(err, group.ErrNameRequired) || errors.Is(err, group.ErrInvalidEmail) {
		httputil.BadRequest(w, "Failed to add group: "+err.Error())
		return
	}
	if err != nil {
		httputil.InternalError(w, "Failed to add group", err)
		return
	}
	httputil.OK(w, "Successfully added the group", httputil.Payload{"group": g})
}

// ListGroups returns the caller's groups.
//
//	GET /api/groups
func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	groups, err := h.groups.List(r.Context(), owner)
	if err != nil {
		httputil.InternalError(w, "No groups found", err)
		return
	}
	httputil.OK(w, "successfully fetched the data.", httputil.Payload{"groups": groups})
}

// DeleteGroup removes one of the caller's groups.
//
//	DELETE /api/groups/{id}
func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	err := h.groups.Delete(r.Context(), owner, chi.URLParam(r, "id"))
	if errors.Is(err, group.ErrNotFound) {
		httputil.NotFound(w, "Failed to delete the group")
		return
	}
	if err != nil {
		httputil.InternalError(w, "Failed to delete the group", err)
		return
	}
	httputil.OK(w, "Group deleted successfully", nil)
}
