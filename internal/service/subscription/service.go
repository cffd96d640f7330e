// Package subscription manages what users follow and how they want to be told:
// subscriptions, per-user channel configuration and user provisioning.
package subscription

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/juju/clock"
)

type subscriptionRepo interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
	Create(ctx context.Context, s domain.Subscription) (*domain.Subscription, error)
	CreateIfAbsent(ctx context.Context, s domain.Subscription) (bool, error)
	SetActive(ctx context.Context, userID, id uuid.UUID, active bool) (*domain.Subscription, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type channelConfigRepo interface {
	Upsert(ctx context.Context, cfg domain.ChannelConfig) (*domain.ChannelConfig, error)
	CreateIfAbsent(ctx context.Context, cfg domain.ChannelConfig) (bool, error)
}

// channelConfigReader is either the repository or a cache in front of it.
type channelConfigReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error)
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type userRepo interface {
	Upsert(ctx context.Context, u domain.User) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides subscription and channel configuration operations.
type Service struct {
	subscriptions subscriptionRepo
	configs       channelConfigRepo
	reader        channelConfigReader
	cache         cacheInvalidator
	users         userRepo
	tx            txManager
	clock         clock.Clock
	log           *slog.Logger
}

// NewService creates a new subscription Service. cache may be nil when
// channel configs are read straight from the repository.
func NewService(
	log *slog.Logger,
	clk clock.Clock,
	subscriptions subscriptionRepo,
	configs channelConfigRepo,
	reader channelConfigReader,
	cache cacheInvalidator,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		subscriptions: subscriptions,
		configs:       configs,
		reader:        reader,
		cache:         cache,
		users:         users,
		tx:            tx,
		clock:         clk,
		log:           log.With("service", "subscription"),
	}
}
