package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WebhookSender posts {"text": ...} payloads, the format accepted by
// Teams, Slack and Discord incoming webhooks.
type WebhookSender struct {
	httpClient *http.Client
}

// NewWebhookSender creates a sender. A nil client means http.DefaultClient.
func NewWebhookSender(client *http.Client) *WebhookSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookSender{httpClient: client}
}

// PostWebhook posts text to url. Any non-2xx response is an error.
func (s *WebhookSender) PostWebhook(ctx context.Context, url, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("webhook: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook: status %d: %s", resp.StatusCode, string(body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
