package mailing

import (
	"context"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/pkg/logger"
)

// LogTransport logs envelopes instead of sending them. Used for local
// development when no provider credentials are available.
type LogTransport struct{}

// NewLogTransport creates a LogTransport.
func NewLogTransport() *LogTransport { return &LogTransport{} }

// Name implements Transport.
func (LogTransport) Name() string { return "log" }

// Submit implements Transport.
func (LogTransport) Submit(_ context.Context, env domain.Envelope) error {
	logger.Info("mail not sent (log transport)",
		"from", env.From,
		"recipients", env.To,
		"subject", env.Subject,
		"html", env.HasHTML(),
	)
	return nil
}
