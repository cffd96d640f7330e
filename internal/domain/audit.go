package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an immutable log entry for one mutation.
// EntityID stays set after the entity is hard-deleted; EntityName keeps the
// last known display name so history remains readable.
type AuditRecord struct {
	Seq        int64
	ID         uuid.UUID
	EntityID   *uuid.UUID
	EntityName string
	Action     AuditAction
	ActorID    *uuid.UUID
	Changes    ChangeMap
	Comment    string
	OccurredAt time.Time
}

// IsSystem reports whether the record has no human actor.
func (r AuditRecord) IsSystem() bool { return r.ActorID == nil }
