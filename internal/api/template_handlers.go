package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/bulkmail/internal/pkg/httputil"
	"github.com/ignite/bulkmail/internal/service/template"
)

// CreateTemplate stores a reusable message body.
//
//	POST /api/templates
func (h *Handlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var in template.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}

	t, err := h.templates.Create(r.Context(), owner, in)
	if errors.Is(err, template.ErrNameRequired) {
		httputil.BadRequest(w, "Failed creation of template")
		return
	}
	if err != nil {
		httputil.InternalError(w, "Failed creation of template", err)
		return
	}
	httputil.OK(w, "successfully added new template", httputil.Payload{"template": t})
}

// ListTemplates returns the caller's templates.
//
//	GET /api/templates
func (h *Handlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	templates, err := h.templates.List(r.Context(), owner)
	if err != nil {
		httputil.InternalError(w, "Cannot fetch the templates!", err)
		return
	}
	httputil.OK(w, "Templates fetched successfully", httputil.Payload{"templates": templates})
}

// DeleteTemplate removes one of the caller's templates.
//
//	DELETE /api/templates/{id}
func (h *Handlers) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	err := h.templates.Delete(r.Context(), owner, chi.URLParam(r, "id"))
	if errors.Is(err, template.ErrNotFound) {
		httputil.NotFound(w, "Template not found!")
		return
	}
	if err != nil {
		httputil.InternalError(w, "Internal Server Error", err)
		return
	}
	httputil.OK(w, "Template successfully deleted", nil)
}
