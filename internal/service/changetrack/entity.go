package changetrack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// CreateEntity stores a new customization and records its creation.
// A nil actor marks a system change.
func (s *Service) CreateEntity(ctx context.Context, actor *uuid.UUID, input CreateEntityInput) (*domain.Customization, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Customization
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.customizations.Create(txCtx, input.toDomain())
		if createErr != nil {
			return fmt.Errorf("create customization: %w", createErr)
		}

		_, trackErr := s.onEntityMutated(txCtx, EntityEvent{
			Action: domain.MutationCreate,
			Actor:  actor,
			Entity: *created,
		})
		return trackErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customization created",
		actorAttr(actor),
		slog.String("entity_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// UpdateEntity applies input to an existing customization and records the
// field-level diff. An update that changes nothing is still recorded.
func (s *Service) UpdateEntity(ctx context.Context, actor *uuid.UUID, input UpdateEntityInput) (*domain.Customization, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Customization
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, loadErr := s.snapshots.Load(txCtx, input.ID)
		if loadErr != nil {
			return loadErr
		}

		var updateErr error
		updated, updateErr = s.customizations.Update(txCtx, input.apply(*before))
		if updateErr != nil {
			return fmt.Errorf("update customization: %w", updateErr)
		}

		_, trackErr := s.onEntityMutated(txCtx, EntityEvent{
			Action:  domain.MutationUpdate,
			Actor:   actor,
			Entity:  *updated,
			Before:  before.ToFieldMap(),
			Comment: input.Comment,
		})
		return trackErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customization updated",
		actorAttr(actor),
		slog.String("entity_id", updated.ID.String()),
	)

	return updated, nil
}

// ChangeStatus moves a customization to a new lifecycle status and records a
// STATUS_CHANGED entry carrying the comment.
func (s *Service) ChangeStatus(ctx context.Context, actor *uuid.UUID, input ChangeStatusInput) (*domain.Customization, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Customization
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, loadErr := s.snapshots.Load(txCtx, input.ID)
		if loadErr != nil {
			return loadErr
		}
		if before.Status == input.Status {
			return domain.NewValidationError("status", "already "+input.Status.String())
		}

		next := *before
		next.Status = input.Status

		var updateErr error
		updated, updateErr = s.customizations.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update customization: %w", updateErr)
		}

		if _, trackErr := s.track(txCtx, tracked{
			entity:  *updated,
			action:  domain.AuditActionStatusChanged,
			actor:   actor,
			changes: Diff(before.ToFieldMap(), updated.ToFieldMap()),
			comment: input.Comment,
			typ:     domain.NotificationTypeChanged,
			message: statusChangedMessage(updated.Name, before.Status, updated.Status),
		}); trackErr != nil {
			return trackErr
		}

		s.search.Enqueue(txCtx, *updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customization status changed",
		actorAttr(actor),
		slog.String("entity_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// DeleteEntity removes a customization together with its dependencies.
// Only the entity deletion is recorded; the cascaded edge removals are not.
func (s *Service) DeleteEntity(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	var removed []domain.Dependency
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, loadErr := s.snapshots.Load(txCtx, id)
		if loadErr != nil {
			return loadErr
		}

		var depErr error
		removed, depErr = s.deleteDependenciesOf(txCtx, actor, id, true)
		if depErr != nil {
			return depErr
		}

		if delErr := s.customizations.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete customization: %w", delErr)
		}

		_, trackErr := s.onEntityMutated(txCtx, EntityEvent{
			Action: domain.MutationDelete,
			Actor:  actor,
			Entity: *before,
			Before: before.ToFieldMap(),
		})
		return trackErr
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "customization deleted",
		actorAttr(actor),
		slog.String("entity_id", id.String()),
		slog.Int("dependencies_removed", len(removed)),
	)

	return nil
}
