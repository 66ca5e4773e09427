// Package httputil provides shared HTTP response/request utilities for handlers.
//
// Every response body is the same envelope: {"success", "message"} plus an
// optional payload. Handlers should use these helpers instead of writing raw
// http.ResponseWriter calls.
package httputil
