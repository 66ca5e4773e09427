package api

import (
	"net/http"

	"github.com/ignite/bulkmail/internal/pkg/httputil"
)

// Dashboard returns how many groups, templates and sends the caller has.
//
//	GET /api/dashboard
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	s, err := h.dashboard.Summary(r.Context(), owner)
	if err != nil {
		httputil.InternalError(w, "Internal Server Error", err)
		return
	}
	httputil.OK(w, "Successfully fetched the data", httputil.Payload{
		"groups":    s.Groups,
		"templates": s.Templates,
		"sents":     s.Sents,
	})
}
