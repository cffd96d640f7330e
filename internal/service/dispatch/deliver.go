package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/internal/metrics"
	"github.com/sourcegraph/conc"
)

// channel is one delivery target for a notification.
type channel struct {
	name string // delivery row key: "email" or "webhook:<name>"
	kind string // metrics label: "email" or "webhook"
	send func(ctx context.Context) error
}

// deliver fans n out to every channel the recipient enabled. Channels run
// concurrently and independently; nothing is returned to the caller.
func (s *Service) deliver(ctx context.Context, sub subject, n domain.Notification) {
	log := s.log.With(slog.String("notification_id", n.ID.String()))
	if n.RecipientID == nil {
		return
	}

	recipient, err := s.users.GetByID(ctx, *n.RecipientID)
	if err != nil {
		log.WarnContext(ctx, "load recipient", slog.String("error", err.Error()))
		return
	}

	cfg, err := s.configs.Get(ctx, recipient.ID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultChannelConfig(recipient.ID)
		cfg, err = &def, nil
	}
	if err != nil {
		log.WarnContext(ctx, "load channel configuration", slog.String("error", err.Error()))
		return
	}

	subjectLine := s.renderSubject(sub, n)
	body := renderBody(sub, n, s.authorName(ctx, n))
	channels := s.channelsFor(recipient, cfg, subjectLine, body)
	if len(channels) == 0 {
		log.DebugContext(ctx, "no enabled channels")
		return
	}

	var wg conc.WaitGroup
	for _, ch := range channels {
		wg.Go(func() { s.attempt(ctx, n, ch) })
	}
	if r := wg.WaitAndRecover(); r != nil {
		log.ErrorContext(ctx, "channel attempt panicked", slog.String("panic", r.String()))
	}
}

func (s *Service) channelsFor(recipient *domain.User, cfg *domain.ChannelConfig, subjectLine, body string) []channel {
	var out []channel

	if cfg.EmailEnabled && s.email != nil && recipient.Email != "" {
		to := recipient.Email
		out = append(out, channel{
			name: domain.ChannelEmail,
			kind: "email",
			send: func(ctx context.Context) error {
				return s.email.SendEmail(ctx, to, subjectLine, body)
			},
		})
	}

	text := renderWebhookText(subjectLine, body)
	for _, hook := range cfg.EnabledWebhooks() {
		url := hook.URL
		out = append(out, channel{
			name: domain.WebhookChannelName(hook.Name),
			kind: "webhook",
			send: func(ctx context.Context) error {
				return s.webhooks.PostWebhook(ctx, url, text)
			},
		})
	}

	return out
}

// attempt claims the (notification, channel) slot, sends once with a bounded
// timeout and records the outcome.
func (s *Service) attempt(ctx context.Context, n domain.Notification, ch channel) {
	log := s.log.With(
		slog.String("notification_id", n.ID.String()),
		slog.String("channel", ch.name),
	)

	claimed, err := s.deliveries.Claim(ctx, n.ID, ch.name, s.clock.Now().UTC())
	if err != nil {
		log.WarnContext(ctx, "claim delivery", slog.String("error", err.Error()))
		return
	}
	if !claimed {
		log.DebugContext(ctx, "delivery already attempted")
		s.record(ch.kind, metrics.ResultSkipped, 0)
		return
	}

	start := s.clock.Now()
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	sendErr := ch.send(sendCtx)
	cancel()
	took := s.clock.Now().Sub(start)

	status := domain.DeliveryStatusDelivered
	result := metrics.ResultDelivered
	var errMsg *string
	if sendErr != nil {
		status = domain.DeliveryStatusFailed
		result = metrics.ResultFailed
		msg := fmt.Sprintf("%s: %v", ch.kind, sendErr)
		errMsg = &msg
		log.WarnContext(ctx, "delivery failed", slog.String("error", sendErr.Error()))
	}
	s.record(ch.kind, result, took)

	if err := s.deliveries.Finish(ctx, n.ID, ch.name, status, errMsg, s.clock.Now().UTC()); err != nil {
		log.WarnContext(ctx, "record delivery outcome", slog.String("error", err.Error()))
	}
}

func (s *Service) authorName(ctx context.Context, n domain.Notification) string {
	if n.OriginActorID == nil {
		return systemAuthor
	}
	u, err := s.users.GetByID(ctx, *n.OriginActorID)
	if err != nil {
		return systemAuthor
	}
	return u.DisplayName()
}

func (s *Service) record(kind, result string, took time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.Delivery(kind, result, took)
}
