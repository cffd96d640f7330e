package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Email:     "user-" + suffix + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Email, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCustomization inserts an ACTIVE customization in module.
// An empty module leaves the column NULL.
func SeedCustomization(t *testing.T, pool *pgxpool.Pool, module string) domain.Customization {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Customization{
		ID:        uuid.New(),
		Kind:      domain.KindSQLQuery,
		Name:      "customization-" + uniqueSuffix(),
		Status:    domain.StatusActive,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if module != "" {
		c.Module = &module
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO customizations (id, kind, name, module, status, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, string(c.Kind), c.Name, c.Module, string(c.Status), c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomization: %v", err)
	}

	return c
}

// SeedSubscription inserts an active subscription.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, sub domain.Subscription) domain.Subscription {
	t.Helper()

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.Active = true
	sub.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO subscriptions (id, user_id, scope, module, entity_id, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sub.ID, sub.UserID, string(sub.Scope), sub.Module, sub.EntityID, sub.Active, sub.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription: %v", err)
	}

	return sub
}
