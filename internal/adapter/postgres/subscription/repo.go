// Package subscription implements the Subscription repository using PostgreSQL.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

const table = "subscriptions"

var columns = []string{"id", "user_id", "scope", "module", "entity_id", "active", "created_at"}

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subscription repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListActiveCandidates returns active subscriptions that may select an entity
// with the given module and id: every ALL subscription, MODULE subscriptions
// on module (skipped when module is empty) and ITEM subscriptions on entityID.
// Ordered by creation time so recipient order is stable.
func (r *Repo) ListActiveCandidates(ctx context.Context, module string, entityID uuid.UUID) ([]domain.Subscription, error) {
	scopes := squirrel.Or{
		squirrel.Eq{"scope": string(domain.ScopeAll)},
		squirrel.And{squirrel.Eq{"scope": string(domain.ScopeItem)}, squirrel.Eq{"entity_id": entityID}},
	}
	if module != "" {
		scopes = append(scopes, squirrel.And{squirrel.Eq{"scope": string(domain.ScopeModule)}, squirrel.Eq{"module": module}})
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"active": true}).
		Where(scopes).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list candidate subscriptions: %w", err)
	}

	return r.selectRows(ctx, sql, args...)
}

// ListForUser returns every subscription owned by userID.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subscriptions: %w", err)
	}

	return r.selectRows(ctx, sql, args...)
}

func (r *Repo) selectRows(ctx context.Context, sql string, args ...any) ([]domain.Subscription, error) {
	var rows []subscriptionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	out := make([]domain.Subscription, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts s. An identical subscription for the same user maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s domain.Subscription) (*domain.Subscription, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.UserID, string(s.Scope), s.Module, s.EntityID, s.Active, s.CreatedAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create subscription: %w", err)
	}

	var row subscriptionRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "subscription", s.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// CreateIfAbsent inserts s unless an identical subscription already exists.
// Reports whether a row was inserted.
func (r *Repo) CreateIfAbsent(ctx context.Context, s domain.Subscription) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.UserID, string(s.Scope), s.Module, s.EntityID, s.Active, s.CreatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build create subscription: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "subscription", s.ID)
	}
	return tag.RowsAffected() > 0, nil
}

// SetActive toggles a subscription owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) SetActive(ctx context.Context, userID, id uuid.UUID, active bool) (*domain.Subscription, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("active", active).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set subscription active: %w", err)
	}

	var row subscriptionRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "subscription", id)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a subscription owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete subscription: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "subscription", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subscription %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type subscriptionRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Scope     string     `db:"scope"`
	Module    *string    `db:"module"`
	EntityID  *uuid.UUID `db:"entity_id"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r *subscriptionRow) dest() []any {
	return []any{&r.ID, &r.UserID, &r.Scope, &r.Module, &r.EntityID, &r.Active, &r.CreatedAt}
}

func (r subscriptionRow) toDomain() domain.Subscription {
	return domain.Subscription{
		ID:        r.ID,
		UserID:    r.UserID,
		Scope:     domain.Scope(r.Scope),
		Module:    r.Module,
		EntityID:  r.EntityID,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}
