// Package channelconfig implements per-user delivery channel settings using PostgreSQL.
package channelconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

const table = "channel_configs"

var columns = []string{"user_id", "email_enabled", "webhooks", "updated_at"}

// Repo provides channel-config persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new channel-config repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the configuration of userID.
// Returns domain.ErrNotFound if the user has none.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get channel_config: %w", err)
	}

	var row configRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "channel_config", userID)
	}

	return row.toDomain()
}

// Upsert stores cfg, replacing any previous configuration of the user.
func (r *Repo) Upsert(ctx context.Context, cfg domain.ChannelConfig) (*domain.ChannelConfig, error) {
	webhooksJSON, err := marshalWebhooks(cfg.Webhooks)
	if err != nil {
		return nil, err
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(cfg.UserID, cfg.EmailEnabled, webhooksJSON, cfg.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"email_enabled = EXCLUDED.email_enabled, webhooks = EXCLUDED.webhooks, updated_at = EXCLUDED.updated_at " +
			postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert channel_config: %w", err)
	}

	var row configRow
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(row.dest()...); err != nil {
		return nil, postgres.MapError(err, "channel_config", cfg.UserID)
	}

	return row.toDomain()
}

// CreateIfAbsent stores cfg only when the user has no configuration yet.
func (r *Repo) CreateIfAbsent(ctx context.Context, cfg domain.ChannelConfig) (bool, error) {
	webhooksJSON, err := marshalWebhooks(cfg.Webhooks)
	if err != nil {
		return false, err
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(cfg.UserID, cfg.EmailEnabled, webhooksJSON, cfg.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build create channel_config: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "channel_config", cfg.UserID)
	}
	return tag.RowsAffected() > 0, nil
}

func marshalWebhooks(webhooks []domain.WebhookChannel) ([]byte, error) {
	if webhooks == nil {
		webhooks = []domain.WebhookChannel{}
	}
	b, err := json.Marshal(webhooks)
	if err != nil {
		return nil, fmt.Errorf("channel_config marshal webhooks: %w", err)
	}
	return b, nil
}

type configRow struct {
	UserID       uuid.UUID
	EmailEnabled bool
	Webhooks     []byte
	UpdatedAt    time.Time
}

func (r *configRow) dest() []any {
	return []any{&r.UserID, &r.EmailEnabled, &r.Webhooks, &r.UpdatedAt}
}

func (r configRow) toDomain() (*domain.ChannelConfig, error) {
	webhooks := []domain.WebhookChannel{}
	if len(r.Webhooks) > 0 {
		if err := json.Unmarshal(r.Webhooks, &webhooks); err != nil {
			return nil, fmt.Errorf("channel_config %s unmarshal webhooks: %w", r.UserID, err)
		}
	}
	return &domain.ChannelConfig{
		UserID:       r.UserID,
		EmailEnabled: r.EmailEnabled,
		Webhooks:     webhooks,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}
