package changetrack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// EntityEvent describes a write to a tracked entity that the persistence
// layer has already applied. Entity holds the state after the write, or the
// last known state for deletes. Before is only read for updates.
type EntityEvent struct {
	Action  domain.MutationAction
	Actor   *uuid.UUID
	Entity  domain.Trackable
	Before  domain.FieldMap
	Comment string
}

// DependencyEvent describes a dependency edge that was created or deleted.
type DependencyEvent struct {
	Action     domain.MutationAction
	Actor      *uuid.UUID
	Dependency domain.Dependency
}

// tracked is one audited change ready to be written.
type tracked struct {
	entity  domain.Trackable
	action  domain.AuditAction
	actor   *uuid.UUID
	changes domain.ChangeMap
	comment string
	typ     domain.NotificationType
	message string
}

// OnEntityMutated records a write made outside this service. It joins the
// transaction carried by ctx, or opens one.
func (s *Service) OnEntityMutated(ctx context.Context, ev EntityEvent) (domain.AuditRecord, error) {
	var record domain.AuditRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var trackErr error
		record, trackErr = s.onEntityMutated(txCtx, ev)
		return trackErr
	})
	if err != nil {
		return domain.AuditRecord{}, err
	}
	return record, nil
}

// OnDependencyMutated records a dependency write made outside this service.
func (s *Service) OnDependencyMutated(ctx context.Context, ev DependencyEvent) (domain.AuditRecord, error) {
	var record domain.AuditRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var trackErr error
		record, trackErr = s.onDependencyMutated(txCtx, ev)
		return trackErr
	})
	if err != nil {
		return domain.AuditRecord{}, err
	}
	return record, nil
}

func (s *Service) onEntityMutated(ctx context.Context, ev EntityEvent) (domain.AuditRecord, error) {
	if ev.Entity == nil {
		return domain.AuditRecord{}, domain.NewValidationError("entity", "required")
	}
	name := ev.Entity.DisplayName()

	t := tracked{entity: ev.Entity, actor: ev.Actor, comment: ev.Comment}
	switch ev.Action {
	case domain.MutationCreate:
		t.action = domain.AuditActionCreated
		t.changes = domain.ChangeMap{}
		t.typ = domain.NotificationTypeNewEntity
		t.message = newEntityMessage(name)
	case domain.MutationUpdate:
		if err := validateBefore(ev.Before); err != nil {
			return domain.AuditRecord{}, err
		}
		t.action = domain.AuditActionUpdated
		t.changes = Diff(ev.Before, ev.Entity.ToFieldMap())
		t.typ = domain.NotificationTypeChanged
		t.message = changedEntityMessage(name)
	case domain.MutationDelete:
		t.action = domain.AuditActionDeleted
		t.changes = domain.ChangeMap{}
		t.typ = domain.NotificationTypeChanged
		t.message = deletedEntityMessage(name)
	default:
		return domain.AuditRecord{}, domain.NewValidationError("action", "invalid value")
	}

	record, err := s.track(ctx, t)
	if err != nil {
		return domain.AuditRecord{}, err
	}

	if ev.Action == domain.MutationDelete {
		s.search.Remove(ctx, ev.Entity.TrackedID())
	} else {
		s.search.Enqueue(ctx, ev.Entity)
	}

	return record, nil
}

func (s *Service) onDependencyMutated(ctx context.Context, ev DependencyEvent) (domain.AuditRecord, error) {
	if ev.Action != domain.MutationCreate && ev.Action != domain.MutationDelete {
		return domain.AuditRecord{}, domain.NewValidationError("action", "must be CREATE or DELETE")
	}
	dep := ev.Dependency

	origin, err := s.customizations.GetByID(ctx, dep.OriginID)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("get origin: %w", err)
	}

	destinationName := dep.DestinationID.String()
	destination, err := s.customizations.GetByID(ctx, dep.DestinationID)
	switch {
	case err == nil:
		destinationName = destination.Name
	case !errors.Is(err, domain.ErrNotFound):
		return domain.AuditRecord{}, fmt.Errorf("get destination: %w", err)
	}

	return s.track(ctx, tracked{
		entity:  *origin,
		action:  domain.AuditActionDependencyChanged,
		actor:   ev.Actor,
		changes: dependencyChanges(ev.Action, dep),
		typ:     domain.NotificationTypeChanged,
		message: dependencyMessage(ev.Action, origin.Name, destinationName),
	})
}

// track writes the audit record, resolves recipients, stores the
// notifications and schedules their delivery.
func (s *Service) track(ctx context.Context, t tracked) (domain.AuditRecord, error) {
	record, err := s.audit.Record(ctx, t.entity, t.action, t.actor, t.changes, t.comment)
	if err != nil {
		return domain.AuditRecord{}, err
	}

	recipients, err := s.resolver.Resolve(ctx, t.entity, t.actor)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("resolve subscribers: %w", err)
	}

	ns := buildNotifications(record, t.typ, t.message, recipients, s.clock.Now().UTC())
	if err := s.notifications.CreateBatch(ctx, ns); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("create notifications: %w", err)
	}

	s.dispatch.Schedule(ctx, t.entity, ns)

	s.log.DebugContext(ctx, "change tracked",
		slog.String("entity_id", t.entity.TrackedID().String()),
		slog.String("action", t.action.String()),
		actorAttr(t.actor),
		slog.Any("changed_fields", t.changes.Fields()),
		slog.Int("recipients", len(recipients)),
	)

	return record, nil
}

// validateBefore rejects snapshot keys outside the tracked field set, so a
// misspelled field cannot silently read as absent.
func validateBefore(before domain.FieldMap) error {
	var errs []domain.FieldError
	for name := range before {
		if !domain.IsTrackedField(name) {
			errs = append(errs, domain.FieldError{Field: "before." + name, Message: "not a tracked field"})
		}
	}
	if len(errs) > 0 {
		slices.SortFunc(errs, func(a, b domain.FieldError) int { return strings.Compare(a.Field, b.Field) })
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// dependencyChanges describes an edge as [old, new] pairs: created edges move
// from nil, deleted edges move to nil.
func dependencyChanges(action domain.MutationAction, dep domain.Dependency) domain.ChangeMap {
	pair := func(v string) domain.FieldChange {
		if action == domain.MutationDelete {
			return domain.FieldChange{Old: v, New: nil}
		}
		return domain.FieldChange{Old: nil, New: v}
	}

	changes := domain.ChangeMap{
		"destination": pair(dep.DestinationID.String()),
		"relation":    pair(dep.Relation),
	}
	if dep.Note != "" {
		changes["note"] = pair(dep.Note)
	}
	return changes
}
