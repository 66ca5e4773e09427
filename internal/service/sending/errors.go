package sending

import "errors"

// ErrGroupNotFound is returned when the requested group does not exist.
// Nothing is dispatched and no record is written.
var ErrGroupNotFound = errors.New("group not found")

// Public messages for send failures.
const (
	MsgGroupNotFound = "Group not found"
	MsgInternal      = "Internal Server Error"
	MsgRecordFailed  = "Failed to add send record"
)

// InternalError wraps an infrastructure failure. Message is safe to show to
// the caller; Err holds the detail for logs.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }
