package changetrack

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

type snapshotSource interface {
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Customization, error)
}

// SnapshotStore reads the committed state of a customization ahead of a write.
// Reads take a row lock when ctx carries a transaction, so concurrent writers
// to the same entity are serialised and each sees the other's result as "before".
type SnapshotStore struct {
	source snapshotSource
}

// NewSnapshotStore creates a SnapshotStore over source.
func NewSnapshotStore(source snapshotSource) *SnapshotStore {
	return &SnapshotStore{source: source}
}

// Capture returns the tracked fields of entity id as stored right now.
// An entity that does not exist yet yields an empty map.
func (s *SnapshotStore) Capture(ctx context.Context, id uuid.UUID) (domain.FieldMap, error) {
	c, err := s.Load(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.FieldMap{}, nil
	}
	if err != nil {
		return nil, err
	}
	return c.ToFieldMap(), nil
}

// Load returns the stored entity, locked for the rest of the transaction.
func (s *SnapshotStore) Load(ctx context.Context, id uuid.UUID) (*domain.Customization, error) {
	c, err := s.source.LockByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}
	return c, nil
}
