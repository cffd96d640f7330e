// Package changetrack turns writes to tracked customizations into audit
// records and notifications.
//
// Every mutation runs through the same pipeline inside one transaction:
// snapshot, diff, audit write, subscriber resolution, notification insert.
// Delivery and search-index refresh are registered as post-commit hooks so a
// rolled-back write never leaves the process.
package changetrack

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/juju/clock"
)

type customizationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customization, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Customization, error)
	List(ctx context.Context, f domain.CustomizationFilter, page domain.Page) ([]domain.Customization, error)
	Create(ctx context.Context, c domain.Customization) (*domain.Customization, error)
	Update(ctx context.Context, c domain.Customization) (*domain.Customization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dependencyRepo interface {
	ListByEntity(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error)
	Create(ctx context.Context, d domain.Dependency) (*domain.Dependency, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Dependency, error)
	DeleteByEntity(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error)
}

type subscriptionRepo interface {
	ListActiveCandidates(ctx context.Context, module string, entityID uuid.UUID) ([]domain.Subscription, error)
}

type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)
}

type notificationRepo interface {
	CreateBatch(ctx context.Context, ns []domain.Notification) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// dispatcher delivers notifications once the enclosing transaction commits.
type dispatcher interface {
	Schedule(ctx context.Context, entity domain.Trackable, ns []domain.Notification)
}

// searchRefresher keeps the search index in step with committed writes.
type searchRefresher interface {
	Enqueue(ctx context.Context, entity domain.Trackable)
	Remove(ctx context.Context, entityID uuid.UUID)
}

type auditMetrics interface {
	AuditWritten(action string)
}

// Service is the change-tracking orchestrator.
type Service struct {
	customizations customizationRepo
	dependencies   dependencyRepo
	notifications  notificationRepo
	tx             txManager
	dispatch       dispatcher
	search         searchRefresher

	snapshots *SnapshotStore
	resolver  *Resolver
	audit     *AuditWriter

	clock clock.Clock
	log   *slog.Logger
}

// NewService creates a new change-tracking Service.
func NewService(
	log *slog.Logger,
	clk clock.Clock,
	customizations customizationRepo,
	dependencies dependencyRepo,
	subscriptions subscriptionRepo,
	audit auditRepo,
	notifications notificationRepo,
	tx txManager,
	dispatch dispatcher,
	search searchRefresher,
	metrics auditMetrics,
) *Service {
	log = log.With("service", "changetrack")
	return &Service{
		customizations: customizations,
		dependencies:   dependencies,
		notifications:  notifications,
		tx:             tx,
		dispatch:       dispatch,
		search:         search,
		snapshots:      NewSnapshotStore(customizations),
		resolver:       NewResolver(log, subscriptions),
		audit:          NewAuditWriter(audit, clk, metrics),
		clock:          clk,
		log:            log,
	}
}

// Snapshots exposes the snapshot store used by the orchestrator.
func (s *Service) Snapshots() *SnapshotStore { return s.snapshots }

func actorAttr(actor *uuid.UUID) slog.Attr {
	if actor == nil {
		return slog.String("actor_id", "system")
	}
	return slog.String("actor_id", actor.String())
}
