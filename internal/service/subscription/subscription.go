package subscription

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// Subscribe creates a subscription for userID. An identical subscription
// returns domain.ErrAlreadyExists.
func (s *Service) Subscribe(ctx context.Context, userID uuid.UUID, input SubscribeInput) (*domain.Subscription, error) {
	if err := input.Validate(userID); err != nil {
		return nil, err
	}

	sub := input.toDomain(userID)
	sub.CreatedAt = s.clock.Now().UTC()

	created, err := s.subscriptions.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	s.log.InfoContext(ctx, "subscription created",
		slog.String("user_id", userID.String()),
		slog.String("subscription_id", created.ID.String()),
		slog.String("scope", created.Scope.String()),
	)
	return created, nil
}

// Unsubscribe removes one of userID's subscriptions.
func (s *Service) Unsubscribe(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.subscriptions.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}

	s.log.InfoContext(ctx, "subscription deleted",
		slog.String("user_id", userID.String()),
		slog.String("subscription_id", id.String()),
	)
	return nil
}

// SetActive pauses or resumes one of userID's subscriptions.
func (s *Service) SetActive(ctx context.Context, userID, id uuid.UUID, active bool) (*domain.Subscription, error) {
	sub, err := s.subscriptions.SetActive(ctx, userID, id, active)
	if err != nil {
		return nil, fmt.Errorf("set subscription active: %w", err)
	}
	return sub, nil
}

// ListForUser returns every subscription of userID, active or not.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	subs, err := s.subscriptions.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}
