// Package sending implements the send-and-record workflow.
//
// ExecuteSend resolves a group and an optional template, hands the message
// to the mail dispatcher, and then writes exactly one sent record. Dispatch
// is fire-and-forget: a successful ExecuteSend guarantees the history entry
// exists, not that any recipient received the mail.
//
// Group and template lookups are by id only. Unless ownership enforcement is
// switched on, a caller who knows another user's group or template id can
// send with it.
package sending
