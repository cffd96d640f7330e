// Package dispatch delivers stored notifications over email and chat webhooks.
//
// Delivery runs after the writing transaction commits, on a worker queue.
// Each (notification, channel) pair is claimed once in the delivery table
// before the send, so a notification is attempted at most once per channel.
// Channel failures are logged and recorded, never returned.
package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/internal/worker"
	"github.com/juju/clock"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type channelConfigSource interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error)
}

type deliveryRepo interface {
	Claim(ctx context.Context, notificationID uuid.UUID, channel string, at time.Time) (bool, error)
	Finish(ctx context.Context, notificationID uuid.UUID, channel string, status domain.DeliveryStatus, errMsg *string, at time.Time) error
}

type emailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type webhookPoster interface {
	PostWebhook(ctx context.Context, url, text string) error
}

type taskQueue interface {
	Submit(task worker.Task) bool
}

type afterCommitter interface {
	AfterCommit(ctx context.Context, fn func(ctx context.Context))
}

type deliveryMetrics interface {
	Delivery(channel, result string, took time.Duration)
}

// Service schedules and performs notification delivery.
type Service struct {
	tx         afterCommitter
	queue      taskQueue
	users      userRepo
	configs    channelConfigSource
	deliveries deliveryRepo
	email      emailSender
	webhooks   webhookPoster
	metrics    deliveryMetrics
	clock      clock.Clock
	cfg        config.DispatchConfig
	log        *slog.Logger
}

// NewService creates a dispatch Service. email may be nil when SMTP is not
// configured; metrics may be nil.
func NewService(
	log *slog.Logger,
	clk clock.Clock,
	cfg config.DispatchConfig,
	tx afterCommitter,
	queue taskQueue,
	users userRepo,
	configs channelConfigSource,
	deliveries deliveryRepo,
	email emailSender,
	webhooks webhookPoster,
	metrics deliveryMetrics,
) *Service {
	return &Service{
		tx:         tx,
		queue:      queue,
		users:      users,
		configs:    configs,
		deliveries: deliveries,
		email:      email,
		webhooks:   webhooks,
		metrics:    metrics,
		clock:      clk,
		cfg:        cfg,
		log:        log.With("service", "dispatch"),
	}
}

// Schedule queues delivery of ns once the transaction in ctx commits.
// Broadcast notifications are only stored, never delivered.
func (s *Service) Schedule(ctx context.Context, entity domain.Trackable, ns []domain.Notification) {
	targeted := make([]domain.Notification, 0, len(ns))
	for _, n := range ns {
		if !n.IsBroadcast() {
			targeted = append(targeted, n)
		}
	}
	if len(targeted) == 0 {
		return
	}

	subject := newSubject(entity)
	s.tx.AfterCommit(ctx, func(ctx context.Context) {
		for _, n := range targeted {
			if !s.queue.Submit(func(taskCtx context.Context) {
				s.deliver(taskCtx, subject, n)
			}) {
				s.log.WarnContext(ctx, "notification delivery dropped",
					slog.String("notification_id", n.ID.String()),
				)
			}
		}
	})
}
