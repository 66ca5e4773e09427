package mailing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/metrics"
	"github.com/ignite/bulkmail/internal/pkg/logger"
)

const defaultSubmitTimeout = 30 * time.Second

// Dispatcher schedules outbound messages on a Transport without waiting for
// the provider's answer.
type Dispatcher struct {
	transport Transport
	from      string
	timeout   time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher that sends every message from the given
// address. A non-positive timeout falls back to 30s.
func NewDispatcher(t Transport, from string, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}
	return &Dispatcher{transport: t, from: from, timeout: timeout}
}

// Dispatch builds the envelope and submits it in the background. It returns
// immediately and never reports delivery failure. The request context is not
// used for the submission so that a finished request does not cancel it.
// After Wait has been called the message is logged and dropped.
func (d *Dispatcher) Dispatch(_ context.Context, msg domain.OutboundMessage) {
	env := d.envelope(msg)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		metrics.IncDispatch(d.transport.Name(), metrics.DispatchDropped)
		logger.Warn("mail dropped: dispatcher shutting down",
			"transport", d.transport.Name(),
			"recipients", env.To,
			"subject", env.Subject,
		)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	metrics.ObserveRecipients(len(env.To))
	metrics.DispatchStarted()
	go func() {
		defer d.wg.Done()
		defer metrics.DispatchFinished()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		name := d.transport.Name()
		start := time.Now()
		err := d.transport.Submit(ctx, env)
		metrics.ObserveDispatchDuration(name, time.Since(start).Seconds())

		if err != nil {
			metrics.IncDispatch(name, metrics.DispatchRejected)
			logger.Error("mail submission failed",
				"transport", name,
				"recipients", env.To,
				"subject", env.Subject,
				"error", err,
			)
			return
		}
		metrics.IncDispatch(name, metrics.DispatchAccepted)
		logger.Info("mail submitted",
			"transport", name,
			"recipient_count", len(env.To),
		)
	}()
}

// Wait stops accepting new messages and blocks until all scheduled
// submissions have returned.
func (d *Dispatcher) Wait() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) envelope(msg domain.OutboundMessage) domain.Envelope {
	to := make([]string, len(msg.Recipients))
	copy(to, msg.Recipients)

	env := domain.Envelope{
		From:    d.from,
		To:      to,
		Subject: msg.Subject,
		Text:    msg.Text,
	}
	// Blank markup (the " " placeholder) is sent as plain text only.
	if strings.TrimSpace(msg.HTML) != "" {
		env.HTML = msg.HTML
	}
	return env
}
