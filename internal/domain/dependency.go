package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRelation is the relation label used when none is given.
const DefaultRelation = "DEPENDS_ON"

// Dependency is a directed edge between two customizations.
type Dependency struct {
	ID            uuid.UUID
	OriginID      uuid.UUID
	DestinationID uuid.UUID
	Relation      string
	Note          string
	CreatedAt     time.Time
}

// Validate checks the edge invariants: both ends set and no self-loop.
func (d Dependency) Validate() error {
	var errs []FieldError

	if d.OriginID == uuid.Nil {
		errs = append(errs, FieldError{Field: "origin_id", Message: "required"})
	}
	if d.DestinationID == uuid.Nil {
		errs = append(errs, FieldError{Field: "destination_id", Message: "required"})
	}
	if d.OriginID != uuid.Nil && d.OriginID == d.DestinationID {
		errs = append(errs, FieldError{Field: "destination_id", Message: "must differ from origin"})
	}
	if len(d.Relation) > 60 {
		errs = append(errs, FieldError{Field: "relation", Message: "max 60 characters"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
