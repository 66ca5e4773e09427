package mailing

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/ignite/bulkmail/internal/domain"
)

// resendAPI is the subset of the Resend emails service used by ResendTransport.
type resendAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendTransport submits mail through the Resend API.
type ResendTransport struct {
	emails resendAPI
}

// NewResendTransport creates a Resend transport for the given API key.
func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{emails: resend.NewClient(apiKey).Emails}
}

// Name implements Transport.
func (r *ResendTransport) Name() string { return "resend" }

// Submit implements Transport.
func (r *ResendTransport) Submit(ctx context.Context, env domain.Envelope) error {
	params := &resend.SendEmailRequest{
		From:    env.From,
		To:      env.To,
		Subject: env.Subject,
		Text:    env.Text,
	}
	if env.HasHTML() {
		params.Html = env.HTML
	}

	if _, err := r.emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}
