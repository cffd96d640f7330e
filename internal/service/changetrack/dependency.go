package changetrack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// CreateDependency links two customizations and records the change against the origin.
func (s *Service) CreateDependency(ctx context.Context, actor *uuid.UUID, input CreateDependencyInput) (*domain.Dependency, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Dependency
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.dependencies.Create(txCtx, input.toDomain())
		if createErr != nil {
			return fmt.Errorf("create dependency: %w", createErr)
		}

		_, trackErr := s.onDependencyMutated(txCtx, DependencyEvent{
			Action:     domain.MutationCreate,
			Actor:      actor,
			Dependency: *created,
		})
		return trackErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dependency created",
		actorAttr(actor),
		slog.String("dependency_id", created.ID.String()),
		slog.String("origin_id", created.OriginID.String()),
		slog.String("destination_id", created.DestinationID.String()),
	)

	return created, nil
}

// DeleteDependency removes one edge and records the change against its origin.
func (s *Service) DeleteDependency(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, delErr := s.dependencies.Delete(txCtx, id)
		if delErr != nil {
			return fmt.Errorf("delete dependency: %w", delErr)
		}

		_, trackErr := s.onDependencyMutated(txCtx, DependencyEvent{
			Action:     domain.MutationDelete,
			Actor:      actor,
			Dependency: *removed,
		})
		return trackErr
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "dependency deleted",
		actorAttr(actor),
		slog.String("dependency_id", id.String()),
	)

	return nil
}

// ClearDependencies removes every edge touching entity id, recording each
// removal against the edge's origin. It returns the number of edges removed.
func (s *Service) ClearDependencies(ctx context.Context, actor *uuid.UUID, id uuid.UUID) (int, error) {
	var removed []domain.Dependency
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, loadErr := s.snapshots.Load(txCtx, id); loadErr != nil {
			return loadErr
		}

		var depErr error
		removed, depErr = s.deleteDependenciesOf(txCtx, actor, id, false)
		return depErr
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "dependencies cleared",
		actorAttr(actor),
		slog.String("entity_id", id.String()),
		slog.Int("count", len(removed)),
	)

	return len(removed), nil
}

// deleteDependenciesOf removes every edge where id is origin or destination.
// With suppressAudit set, the removals are not recorded individually; the
// caller records the enclosing change instead.
func (s *Service) deleteDependenciesOf(ctx context.Context, actor *uuid.UUID, id uuid.UUID, suppressAudit bool) ([]domain.Dependency, error) {
	removed, err := s.dependencies.DeleteByEntity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete dependencies: %w", err)
	}
	if suppressAudit {
		return removed, nil
	}

	for _, dep := range removed {
		if _, err := s.onDependencyMutated(ctx, DependencyEvent{
			Action:     domain.MutationDelete,
			Actor:      actor,
			Dependency: dep,
		}); err != nil {
			return nil, err
		}
	}
	return removed, nil
}
