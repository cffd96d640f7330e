// Package delivery implements the per-channel notification delivery log using PostgreSQL.
package delivery

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

const table = "notification_deliveries"

var columns = []string{"notification_id", "channel", "status", "error", "attempted_at", "finished_at"}

// Repo provides delivery-log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new delivery repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Claim records a DISPATCH_ATTEMPTED row for (notificationID, channel).
// It reports false when the pair was already claimed, so each channel is
// attempted at most once per notification.
func (r *Repo) Claim(ctx context.Context, notificationID uuid.UUID, channel string, at time.Time) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("notification_id", "channel", "status", "attempted_at").
		Values(notificationID, channel, string(domain.DeliveryStatusAttempted), at).
		Suffix("ON CONFLICT (notification_id, channel) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build claim delivery: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "notification", notificationID)
	}
	return tag.RowsAffected() == 1, nil
}

// Finish moves a claimed delivery to a terminal status.
func (r *Repo) Finish(ctx context.Context, notificationID uuid.UUID, channel string, status domain.DeliveryStatus, errMsg *string, at time.Time) error {
	if !status.IsTerminal() {
		return fmt.Errorf("delivery %s/%s: status %s is not terminal: %w", notificationID, channel, status, domain.ErrValidation)
	}

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("error", errMsg).
		Set("finished_at", at).
		Where(squirrel.Eq{"notification_id": notificationID, "channel": channel}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build finish delivery: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "notification", notificationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delivery %s/%s: %w", notificationID, channel, domain.ErrNotFound)
	}
	return nil
}

// ListByNotification returns every delivery row for a notification ordered by channel.
func (r *Repo) ListByNotification(ctx context.Context, notificationID uuid.UUID) ([]domain.Delivery, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"notification_id": notificationID}).
		OrderBy("channel ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list deliveries: %w", err)
	}

	var rows []deliveryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	out := make([]domain.Delivery, len(rows))
	for i, row := range rows {
		out[i] = domain.Delivery{
			NotificationID: row.NotificationID,
			Channel:        row.Channel,
			Status:         domain.DeliveryStatus(row.Status),
			Error:          row.Error,
			AttemptedAt:    row.AttemptedAt,
			FinishedAt:     row.FinishedAt,
		}
	}
	return out, nil
}

type deliveryRow struct {
	NotificationID uuid.UUID  `db:"notification_id"`
	Channel        string     `db:"channel"`
	Status         string     `db:"status"`
	Error          *string    `db:"error"`
	AttemptedAt    time.Time  `db:"attempted_at"`
	FinishedAt     *time.Time `db:"finished_at"`
}
