// Package notification is the read side of stored notifications: listing a
// user's feed and flipping read flags.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

type notificationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Service provides notification feed operations.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new notification Service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}

// List returns the notifications addressed to userID plus broadcasts,
// newest first. limit 0 selects the default page size.
func (s *Service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}
	page := domain.Page{Limit: limit}.Normalize()

	ns, err := s.notifications.ListForUser(ctx, userID, unreadOnly, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return ns, nil
}

// MarkRead flags notification id as read for its recipient. Marking an
// already read notification succeeds without a write. Broadcasts and other
// users' notifications return domain.ErrForbidden.
func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	if n.IsBroadcast() || *n.RecipientID != userID {
		return nil, domain.ErrForbidden
	}
	if n.Read {
		return n, nil
	}

	updated, err := s.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return updated, nil
}

// MarkAllRead flags every unread notification addressed to userID.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", count),
	)
	return count, nil
}
