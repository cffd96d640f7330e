package changetrack

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/juju/clock"
)

// AuditWriter appends immutable audit records. It has no update or delete path.
type AuditWriter struct {
	repo    auditRepo
	clock   clock.Clock
	metrics auditMetrics
}

// NewAuditWriter creates an AuditWriter. metrics may be nil.
func NewAuditWriter(repo auditRepo, clk clock.Clock, metrics auditMetrics) *AuditWriter {
	return &AuditWriter{repo: repo, clock: clk, metrics: metrics}
}

// Record writes one audit record for entity. A nil or empty changes map is stored as {}.
func (w *AuditWriter) Record(
	ctx context.Context,
	entity domain.Trackable,
	action domain.AuditAction,
	actor *uuid.UUID,
	changes domain.ChangeMap,
	comment string,
) (domain.AuditRecord, error) {
	if changes.IsEmpty() {
		changes = domain.ChangeMap{}
	}
	entityID := entity.TrackedID()

	record, err := w.repo.Create(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		EntityID:   &entityID,
		EntityName: entity.DisplayName(),
		Action:     action,
		ActorID:    actor,
		Changes:    changes,
		Comment:    comment,
		OccurredAt: w.clock.Now().UTC(),
	})
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("write audit record: %w", err)
	}

	if w.metrics != nil {
		w.metrics.AuditWritten(action.String())
	}
	return record, nil
}
