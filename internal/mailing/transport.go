package mailing

import (
	"context"
	"fmt"

	"github.com/ignite/bulkmail/internal/config"
	"github.com/ignite/bulkmail/internal/domain"
)

// Transport submits one envelope to an outbound mail provider. Implementations
// must be safe for concurrent use.
type Transport interface {
	Submit(ctx context.Context, env domain.Envelope) error
	Name() string
}

// NewTransport builds the transport selected by cfg.Transport.
func NewTransport(cfg config.MailConfig) (Transport, error) {
	switch cfg.Transport {
	case "sendgrid":
		return NewSendGridTransport(cfg.APIKey, cfg.SendGridBaseURL, cfg.Timeout()), nil
	case "ses":
		return NewSESTransport(context.Background(), cfg.SES.AccessKey, cfg.SES.SecretKey, cfg.SES.Region)
	case "resend":
		return NewResendTransport(cfg.APIKey), nil
	case "log":
		return NewLogTransport(), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.Transport)
	}
}
