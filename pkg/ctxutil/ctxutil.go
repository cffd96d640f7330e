// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	actorIDKey ctxKey = iota
	requestIDKey
)

// WithActorID stores the acting user's ID in the context.
func WithActorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorIDFromCtx extracts the acting user's ID.
// Returns uuid.Nil and false when the call is anonymous or system-initiated.
func ActorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// ActorFromCtx returns the acting user as the nullable actor the change
// tracker expects: nil stands for the system.
func ActorFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := ActorIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
