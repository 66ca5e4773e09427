// Package mailing hands resolved outbound messages to a mail transport.
//
// The Dispatcher is fire-and-forget: Dispatch returns as soon as the
// submission has been scheduled on a background goroutine, and transport
// failures are logged and counted but never reported back to the caller.
// Each dispatch produces exactly one Transport.Submit call. There is no
// retry.
//
// Transports (SendGrid, SES, Resend, log) are chosen once at start-up from
// config.MailConfig via NewTransport. Credentials and the sender address are
// injected at construction.
package mailing
