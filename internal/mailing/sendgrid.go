package mailing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ignite/bulkmail/internal/domain"
)

const defaultSendGridBaseURL = "https://api.sendgrid.com/v3"

// SendGridTransport submits mail through the SendGrid v3 Mail Send API. All
// recipients share a single personalization, so one Submit is one API call.
type SendGridTransport struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSendGridTransport creates a SendGrid transport. An empty baseURL uses
// the public API endpoint.
func NewSendGridTransport(apiKey, baseURL string, timeout time.Duration) *SendGridTransport {
	if baseURL == "" {
		baseURL = defaultSendGridBaseURL
	}
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}
	return &SendGridTransport{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Name implements Transport.
func (s *SendGridTransport) Name() string { return "sendgrid" }

// Submit implements Transport.
func (s *SendGridTransport) Submit(ctx context.Context, env domain.Envelope) error {
	if s.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}

	to := make([]map[string]string, 0, len(env.To))
	for _, addr := range env.To {
		to = append(to, map[string]string{"email": addr})
	}

	content := []map[string]string{{"type": "text/plain", "value": env.Text}}
	if env.HasHTML() {
		content = append(content, map[string]string{"type": "text/html", "value": env.HTML})
	}

	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{{"to": to}},
		"from":             map[string]string{"email": env.From},
		"subject":          env.Subject,
		"content":          content,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/mail/send", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("SendGrid error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
