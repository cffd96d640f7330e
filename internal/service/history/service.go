// Package history exposes the audit trail for reading.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

type auditRepo interface {
	ListByEntity(ctx context.Context, entityID uuid.UUID, page domain.Page) ([]domain.AuditRecord, error)
	List(ctx context.Context, page domain.Page) ([]domain.AuditRecord, error)
}

// Service lists audit records.
type Service struct {
	audit auditRepo
}

// NewService creates a new history Service.
func NewService(audit auditRepo) *Service {
	return &Service{audit: audit}
}

// ListAuditHistory returns audit records newest first, either for one entity
// (including entities that have since been deleted) or across all entities
// when entityID is nil.
func (s *Service) ListAuditHistory(ctx context.Context, entityID *uuid.UUID, page domain.Page) ([]domain.AuditRecord, error) {
	if page.Limit < 0 || page.Offset < 0 {
		return nil, domain.NewValidationError("page", "limit and offset must not be negative")
	}
	page = page.Normalize()

	var (
		records []domain.AuditRecord
		err     error
	)
	if entityID != nil {
		records, err = s.audit.ListByEntity(ctx, *entityID, page)
	} else {
		records, err = s.audit.List(ctx, page)
	}
	if err != nil {
		return nil, fmt.Errorf("list audit history: %w", err)
	}
	return records, nil
}
