package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// GetChannelConfig returns the delivery preferences of userID. Users without
// a stored configuration get the default one.
func (s *Service) GetChannelConfig(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error) {
	cfg, err := s.reader.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultChannelConfig(userID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get channel config: %w", err)
	}
	return cfg, nil
}

// UpdateChannelConfig replaces the delivery preferences of userID.
func (s *Service) UpdateChannelConfig(ctx context.Context, userID uuid.UUID, input UpdateChannelConfigInput) (*domain.ChannelConfig, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cfg := input.toDomain(userID)
	cfg.UpdatedAt = s.clock.Now().UTC()

	saved, err := s.configs.Upsert(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("upsert channel config: %w", err)
	}

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "channel config updated",
		slog.String("user_id", userID.String()),
		slog.Bool("email_enabled", saved.EmailEnabled),
		slog.Int("webhooks", len(saved.Webhooks)),
	)
	return saved, nil
}

func (s *Service) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "channel config cache not invalidated",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}
