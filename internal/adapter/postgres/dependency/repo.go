// Package dependency implements the Dependency repository using PostgreSQL.
package dependency

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

const table = "dependencies"

var columns = []string{"id", "origin_id", "destination_id", "relation", "note", "created_at"}

// Repo provides dependency-edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dependency repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an edge by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dependency, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get dependency: %w", err)
	}

	var row dependencyRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "dependency", id)
	}

	d := row.toDomain()
	return &d, nil
}

// ListByEntity returns edges where id is the origin or the destination,
// ordered by creation time.
func (r *Repo) ListByEntity(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Or{
			squirrel.Eq{"origin_id": id},
			squirrel.Eq{"destination_id": id},
		}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dependencies: %w", err)
	}

	var rows []dependencyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list dependencies: %w", err)
	}

	return toDomainList(rows), nil
}

// Create inserts an edge. A duplicate (origin, destination, relation) maps to
// domain.ErrAlreadyExists and a missing end to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, d domain.Dependency) (*domain.Dependency, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.OriginID, d.DestinationID, d.Relation, d.Note, d.CreatedAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create dependency: %w", err)
	}

	var row dependencyRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "dependency", d.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes an edge and returns it. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Dependency, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete dependency: %w", err)
	}

	var row dependencyRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "dependency", id)
	}

	out := row.toDomain()
	return &out, nil
}

// DeleteByEntity removes every edge touching id in either direction and
// returns the removed edges.
func (r *Repo) DeleteByEntity(ctx context.Context, id uuid.UUID) ([]domain.Dependency, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Eq{"origin_id": id},
			squirrel.Eq{"destination_id": id},
		}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete dependencies: %w", err)
	}

	var rows []dependencyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("delete dependencies of %s: %w", id, err)
	}

	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type dependencyRow struct {
	ID            uuid.UUID `db:"id"`
	OriginID      uuid.UUID `db:"origin_id"`
	DestinationID uuid.UUID `db:"destination_id"`
	Relation      string    `db:"relation"`
	Note          string    `db:"note"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r *dependencyRow) dest() []any {
	return []any{&r.ID, &r.OriginID, &r.DestinationID, &r.Relation, &r.Note, &r.CreatedAt}
}

func (r dependencyRow) toDomain() domain.Dependency {
	return domain.Dependency{
		ID:            r.ID,
		OriginID:      r.OriginID,
		DestinationID: r.DestinationID,
		Relation:      r.Relation,
		Note:          r.Note,
		CreatedAt:     r.CreatedAt,
	}
}

func toDomainList(rows []dependencyRow) []domain.Dependency {
	out := make([]domain.Dependency, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out
}
