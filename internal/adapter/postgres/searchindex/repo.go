// Package searchindex stores embedding vectors of tracked entities in PostgreSQL.
package searchindex

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

const table = "search_index"

// Repo provides search-index persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new search-index repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert stores the vector for (kind, entityID), replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, kind domain.Kind, entityID uuid.UUID, vector []float32, at time.Time) error {
	vectorJSON, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("search_index marshal vector: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("kind", "entity_id", "vector", "dimension", "updated_at").
		Values(string(kind), entityID, vectorJSON, len(vector), at).
		Suffix("ON CONFLICT (kind, entity_id) DO UPDATE SET " +
			"vector = EXCLUDED.vector, dimension = EXCLUDED.dimension, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert search_index: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "search_index", entityID)
	}
	return nil
}

// Delete removes every vector stored for entityID.
func (r *Repo) Delete(ctx context.Context, entityID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"entity_id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete search_index: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "search_index", entityID)
	}
	return nil
}

// Get returns the stored vector for (kind, entityID).
func (r *Repo) Get(ctx context.Context, kind domain.Kind, entityID uuid.UUID) ([]float32, error) {
	sql, args, err := postgres.Builder().
		Select("vector").
		From(table).
		Where(squirrel.Eq{"kind": string(kind), "entity_id": entityID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get search_index: %w", err)
	}

	var raw []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, postgres.MapError(err, "search_index", entityID)
	}

	var vector []float32
	if err := json.Unmarshal(raw, &vector); err != nil {
		return nil, fmt.Errorf("search_index %s unmarshal vector: %w", entityID, err)
	}
	return vector, nil
}
