package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// ProvisionUserInput carries the identity-provider view of a user.
type ProvisionUserInput struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// Validate checks the identity fields.
func (i ProvisionUserInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if email := strings.TrimSpace(i.Email); email != "" && !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProvisionUser stores or refreshes a user and, on first sight, gives them
// the default channel configuration and a subscription to everything.
// Calling it again for the same user changes nothing but the identity fields.
func (s *Service) ProvisionUser(ctx context.Context, input ProvisionUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	var user *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.users.Upsert(txCtx, domain.User{
			ID:        input.ID,
			Username:  strings.TrimSpace(input.Username),
			Email:     strings.TrimSpace(input.Email),
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		cfg := domain.DefaultChannelConfig(user.ID)
		cfg.UpdatedAt = now
		if _, err := s.configs.CreateIfAbsent(txCtx, cfg); err != nil {
			return fmt.Errorf("create default channel config: %w", err)
		}

		created, err := s.subscriptions.CreateIfAbsent(txCtx, domain.Subscription{
			ID:        uuid.New(),
			UserID:    user.ID,
			Scope:     domain.ScopeAll,
			Active:    true,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create default subscription: %w", err)
		}
		if created {
			s.log.InfoContext(txCtx, "user provisioned",
				slog.String("user_id", user.ID.String()),
				slog.String("username", user.Username),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
