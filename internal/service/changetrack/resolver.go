package changetrack

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// Resolver finds the users subscribed to changes of an entity.
type Resolver struct {
	subscriptions subscriptionRepo
	log           *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(log *slog.Logger, subscriptions subscriptionRepo) *Resolver {
	return &Resolver{subscriptions: subscriptions, log: log}
}

// Resolve returns the distinct subscribers of entity, sorted, without actor.
// Malformed subscriptions are logged and skipped. Only a failed read is
// returned as an error.
func (r *Resolver) Resolve(ctx context.Context, entity domain.Trackable, actor *uuid.UUID) ([]uuid.UUID, error) {
	candidates, err := r.subscriptions.ListActiveCandidates(ctx, entity.TrackedModule(), entity.TrackedID())
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(candidates))
	recipients := make([]uuid.UUID, 0, len(candidates))
	for _, sub := range candidates {
		if vErr := sub.Validate(); vErr != nil {
			r.log.WarnContext(ctx, "skipping malformed subscription",
				slog.String("subscription_id", sub.ID.String()),
				slog.String("error", vErr.Error()),
			)
			continue
		}
		if !sub.Matches(entity) {
			continue
		}
		if actor != nil && sub.UserID == *actor {
			continue
		}
		if _, dup := seen[sub.UserID]; dup {
			continue
		}
		seen[sub.UserID] = struct{}{}
		recipients = append(recipients, sub.UserID)
	}

	slices.SortFunc(recipients, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return recipients, nil
}
