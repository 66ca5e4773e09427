package api

import (
	"errors"
	"net/http"

	"github.com/ignite/bulkmail/internal/pkg/httputil"
	"github.com/ignite/bulkmail/internal/service/sending"
)

// Send mails a group and records the send.
//
//	POST /api/send
func (h *Handlers) Send(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req sending.SendRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	rec, err := h.sends.ExecuteSend(r.Context(), owner, req)
	if err != nil {
		writeSendError(w, err)
		return
	}
	httputil.OK(w, "Successfully sent", httputil.Payload{"sent": rec})
}

// SentHistory lists the caller's past sends with group names resolved.
//
//	GET /api/sent
func (h *Handlers) SentHistory(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	mails, err := h.sends.History(r.Context(), owner)
	if err != nil {
		writeSendError(w, err)
		return
	}
	httputil.OK(w, "Successfully fetched the data", httputil.Payload{"mails": mails})
}

func writeSendError(w http.ResponseWriter, err error) {
	if errors.Is(err, sending.ErrGroupNotFound) {
		httputil.NotFound(w, sending.MsgGroupNotFound)
		return
	}
	var ie *sending.InternalError
	if errors.As(err, &ie) {
		httputil.InternalError(w, ie.Message, ie.Err)
		return
	}
	httputil.InternalError(w, sending.MsgInternal, err)
}
