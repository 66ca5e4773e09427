// Package template implements reusable message templates.
//
// Template content is opaque markup. It is never parsed or rendered; the
// send workflow passes it verbatim as the HTML body and records the
// template name as the message label.
package template
