package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// PostgreSQL error codes the repositories care about.
const (
	codeNotNullViolation     = "23502"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
)

// MapError converts pgx/pgconn errors to domain errors, naming the entity and id.
// Context errors are not mapped; they pass through wrapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case codeSerializationFailure:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
