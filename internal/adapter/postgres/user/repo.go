// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "email", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var u domain.User
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// Upsert inserts u or refreshes username and email of an existing user with
// the same id. A username owned by another id maps to domain.ErrAlreadyExists.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.Email, createdAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, email = EXCLUDED.email " +
			postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user: %w", err)
	}

	var out domain.User
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&out.ID, &out.Username, &out.Email, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &out, nil
}
