package changetrack

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// GetEntity returns one customization.
func (s *Service) GetEntity(ctx context.Context, id uuid.UUID) (*domain.Customization, error) {
	c, err := s.customizations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customization: %w", err)
	}
	return c, nil
}

// ListEntities returns customizations matching f ordered by name.
func (s *Service) ListEntities(ctx context.Context, f domain.CustomizationFilter, page domain.Page) ([]domain.Customization, error) {
	if f.Kind != "" && !f.Kind.IsValid() {
		return nil, domain.NewValidationError("kind", "invalid value")
	}
	if f.Status != "" && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}

	cs, err := s.customizations.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list customizations: %w", err)
	}
	return cs, nil
}

// ListDependencies returns every dependency edge touching id, in either
// direction.
func (s *Service) ListDependencies(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error) {
	if _, err := s.customizations.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get customization: %w", err)
	}

	deps, err := s.dependencies.ListByEntity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list dependencies: %w", err)
	}
	return deps, nil
}
