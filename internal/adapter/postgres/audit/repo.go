// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

const table = "audit_records"

var columns = []string{"seq", "id", "entity_id", "entity_name", "action", "actor_id", "changes", "comment", "occurred_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns it with its sequence number.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	changes := record.Changes
	if changes == nil {
		changes = domain.ChangeMap{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(record.ID, record.EntityID, record.EntityName, string(record.Action), record.ActorID,
			changesJSON, record.Comment, record.OccurredAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build create audit_record: %w", err)
	}

	var row auditRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the history of one entity in chronological order,
// with seq breaking ties between records sharing a timestamp.
func (r *Repo) ListByEntity(ctx context.Context, entityID uuid.UUID, page domain.Page) ([]domain.AuditRecord, error) {
	page = page.Normalize()

	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("occurred_at ASC", "seq ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	return r.list(ctx, q)
}

// List returns the global audit log, newest first.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.AuditRecord, error) {
	page = page.Normalize()

	q := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("occurred_at DESC", "seq DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	return r.list(ctx, q)
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.AuditRecord, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i := range rows {
		rec, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type auditRow struct {
	Seq        int64      `db:"seq"`
	ID         uuid.UUID  `db:"id"`
	EntityID   *uuid.UUID `db:"entity_id"`
	EntityName string     `db:"entity_name"`
	Action     string     `db:"action"`
	ActorID    *uuid.UUID `db:"actor_id"`
	Changes    []byte     `db:"changes"`
	Comment    string     `db:"comment"`
	OccurredAt time.Time  `db:"occurred_at"`
}

func (r *auditRow) dest() []any {
	return []any{&r.Seq, &r.ID, &r.EntityID, &r.EntityName, &r.Action, &r.ActorID, &r.Changes, &r.Comment, &r.OccurredAt}
}

func (r auditRow) toDomain() (domain.AuditRecord, error) {
	changes := domain.ChangeMap{}
	if len(r.Changes) > 0 {
		if err := json.Unmarshal(r.Changes, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", r.ID, err)
		}
	}

	return domain.AuditRecord{
		Seq:        r.Seq,
		ID:         r.ID,
		EntityID:   r.EntityID,
		EntityName: r.EntityName,
		Action:     domain.AuditAction(r.Action),
		ActorID:    r.ActorID,
		Changes:    changes,
		Comment:    r.Comment,
		OccurredAt: r.OccurredAt,
	}, nil
}
