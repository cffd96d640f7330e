// Package notification implements the Notification repository using PostgreSQL.
package notification

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

const table = "notifications"

var columns = []string{
	"id", "entity_id", "audit_record_id", "type", "message",
	"recipient_id", "origin_actor_id", "read", "created_at",
}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts all notifications in a single statement.
func (r *Repo) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	q := postgres.Builder().Insert(table).Columns(columns...)
	for _, n := range ns {
		q = q.Values(n.ID, n.EntityID, n.AuditRecordID, string(n.Type), n.Message,
			n.RecipientID, n.OriginActorID, n.Read, n.CreatedAt)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build create notifications: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notification", ns[0].ID)
	}
	return nil
}

// MarkRead flags one notification addressed to userID as read.
// Returns domain.ErrNotFound when no such notification is addressed to userID.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("read", true).
		Where(squirrel.Eq{"id": id, "recipient_id": userID}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mark notification read: %w", err)
	}

	var row notificationRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	n := row.toDomain()
	return &n, nil
}

// MarkAllRead flags every unread notification addressed to userID as read
// and returns how many changed. Broadcasts are untouched.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("read", true).
		Where(squirrel.Eq{"recipient_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark all notifications read: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteReadBefore removes read and broadcast notifications created before
// before. Unread personal notifications are kept regardless of age.
func (r *Repo) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"created_at": before}).
		Where(squirrel.Or{squirrel.Eq{"read": true}, squirrel.Eq{"recipient_id": nil}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete old notifications: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete old notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a notification by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get notification: %w", err)
	}

	var row notificationRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	n := row.toDomain()
	return &n, nil
}

// ListForUser returns notifications addressed to userID plus broadcasts,
// newest first. Broadcasts have no per-user read state, so the unread view
// holds only notifications addressed to userID.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	limit = domain.Page{Limit: limit}.Normalize().Limit

	var where squirrel.Sqlizer = squirrel.Or{
		squirrel.Eq{"recipient_id": userID},
		squirrel.Eq{"recipient_id": nil},
	}
	if unreadOnly {
		where = squirrel.Eq{"recipient_id": userID, "read": false}
	}

	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifications: %w", err)
	}

	var rows []notificationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]domain.Notification, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type notificationRow struct {
	ID            uuid.UUID  `db:"id"`
	EntityID      *uuid.UUID `db:"entity_id"`
	AuditRecordID *uuid.UUID `db:"audit_record_id"`
	Type          string     `db:"type"`
	Message       string     `db:"message"`
	RecipientID   *uuid.UUID `db:"recipient_id"`
	OriginActorID *uuid.UUID `db:"origin_actor_id"`
	Read          bool       `db:"read"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r *notificationRow) dest() []any {
	return []any{&r.ID, &r.EntityID, &r.AuditRecordID, &r.Type, &r.Message,
		&r.RecipientID, &r.OriginActorID, &r.Read, &r.CreatedAt}
}

func (r notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:            r.ID,
		EntityID:      r.EntityID,
		AuditRecordID: r.AuditRecordID,
		Type:          domain.NotificationType(r.Type),
		Message:       r.Message,
		RecipientID:   r.RecipientID,
		OriginActorID: r.OriginActorID,
		Read:          r.Read,
		CreatedAt:     r.CreatedAt,
	}
}
