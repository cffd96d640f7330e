// Package customization implements the Customization repository using PostgreSQL.
package customization

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

const table = "customizations"

var columns = []string{
	"id", "kind", "name", "module", "external_id", "technical_description", "content",
	"status", "version", "owner", "owner_email", "is_active",
	"external_created_at", "external_modified_at", "created_at", "updated_at",
}

// Repo provides customization persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customization repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a customization by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customization, error) {
	return r.get(ctx, id, "")
}

// LockByID returns a customization and takes a row lock for the rest of the
// surrounding transaction. Outside a transaction it behaves like GetByID.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Customization, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Customization, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		q = q.Suffix(suffix)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customization: %w", err)
	}

	var row customizationRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "customization", id)
	}

	c := row.toDomain()
	return &c, nil
}

// List returns customizations matching f ordered by name, then id.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.CustomizationFilter, page domain.Page) ([]domain.Customization, error) {
	page = page.Normalize()

	q := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	if f.Module != "" {
		q = q.Where(squirrel.Eq{"module": f.Module})
	}
	if f.Kind != "" {
		q = q.Where(squirrel.Eq{"kind": string(f.Kind)})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(f.Status)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list customizations: %w", err)
	}

	var rows []customizationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list customizations: %w", err)
	}

	out := make([]domain.Customization, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts c and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c domain.Customization) (*domain.Customization, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			c.ID, string(c.Kind), c.Name, c.Module, c.ExternalID, c.TechnicalDescription, c.Content,
			string(c.Status), c.Version, c.Owner, c.OwnerEmail, c.IsActive,
			c.ExternalCreatedAt, c.ExternalModifiedAt, c.CreatedAt, c.UpdatedAt,
		).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create customization: %w", err)
	}

	var row customizationRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "customization", c.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update overwrites every mutable column of c and returns the persisted row.
func (r *Repo) Update(ctx context.Context, c domain.Customization) (*domain.Customization, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"kind":                  string(c.Kind),
			"name":                  c.Name,
			"module":                c.Module,
			"external_id":           c.ExternalID,
			"technical_description": c.TechnicalDescription,
			"content":               c.Content,
			"status":                string(c.Status),
			"version":               c.Version,
			"owner":                 c.Owner,
			"owner_email":           c.OwnerEmail,
			"is_active":             c.IsActive,
			"external_created_at":   c.ExternalCreatedAt,
			"external_modified_at":  c.ExternalModifiedAt,
			"updated_at":            c.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update customization: %w", err)
	}

	var row customizationRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "customization", c.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a customization. Dependencies and search-index rows go with it
// via ON DELETE CASCADE. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete customization: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "customization", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customization %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type customizationRow struct {
	ID                   uuid.UUID  `db:"id"`
	Kind                 string     `db:"kind"`
	Name                 string     `db:"name"`
	Module               *string    `db:"module"`
	ExternalID           *string    `db:"external_id"`
	TechnicalDescription *string    `db:"technical_description"`
	Content              *string    `db:"content"`
	Status               string     `db:"status"`
	Version              *string    `db:"version"`
	Owner                *string    `db:"owner"`
	OwnerEmail           *string    `db:"owner_email"`
	IsActive             bool       `db:"is_active"`
	ExternalCreatedAt    *time.Time `db:"external_created_at"`
	ExternalModifiedAt   *time.Time `db:"external_modified_at"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// dest returns scan targets in columns order.
func (r *customizationRow) dest() []any {
	return []any{
		&r.ID, &r.Kind, &r.Name, &r.Module, &r.ExternalID, &r.TechnicalDescription, &r.Content,
		&r.Status, &r.Version, &r.Owner, &r.OwnerEmail, &r.IsActive,
		&r.ExternalCreatedAt, &r.ExternalModifiedAt, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r customizationRow) toDomain() domain.Customization {
	return domain.Customization{
		ID:                   r.ID,
		Kind:                 domain.Kind(r.Kind),
		Name:                 r.Name,
		Module:               r.Module,
		ExternalID:           r.ExternalID,
		TechnicalDescription: r.TechnicalDescription,
		Content:              r.Content,
		Status:               domain.Status(r.Status),
		Version:              r.Version,
		Owner:                r.Owner,
		OwnerEmail:           r.OwnerEmail,
		IsActive:             r.IsActive,
		ExternalCreatedAt:    r.ExternalCreatedAt,
		ExternalModifiedAt:   r.ExternalModifiedAt,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}
