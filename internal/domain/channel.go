package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChannelEmail is the channel name used for email deliveries.
const ChannelEmail = "email"

// WebhookChannelName returns the delivery channel name for a webhook.
func WebhookChannelName(name string) string { return "webhook:" + name }

// WebhookChannel is a chat webhook target (Teams, Slack, Discord compatible).
type WebhookChannel struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// ChannelConfig holds a user's delivery preferences.
type ChannelConfig struct {
	UserID       uuid.UUID        `json:"user_id"`
	EmailEnabled bool             `json:"email_enabled"`
	Webhooks     []WebhookChannel `json:"webhooks"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// DefaultChannelConfig returns the configuration given to new users: email on, no webhooks.
func DefaultChannelConfig(userID uuid.UUID) ChannelConfig {
	return ChannelConfig{
		UserID:       userID,
		EmailEnabled: true,
		Webhooks:     []WebhookChannel{},
	}
}

// EnabledWebhooks returns webhooks that are enabled and have a URL.
func (c ChannelConfig) EnabledWebhooks() []WebhookChannel {
	var out []WebhookChannel
	for _, w := range c.Webhooks {
		if w.Enabled && w.URL != "" {
			out = append(out, w)
		}
	}
	return out
}
