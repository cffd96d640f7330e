//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juju/clock"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/customtrack-backend/internal/adapter/notify"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/channelconfig"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/customization"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/delivery"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/dependency"
	notificationrepo "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/notification"
	searchrepo "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/searchindex"
	subscriptionrepo "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/subscription"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/internal/metrics"
	"github.com/heartmarshall/customtrack-backend/internal/service/changetrack"
	"github.com/heartmarshall/customtrack-backend/internal/service/dispatch"
	"github.com/heartmarshall/customtrack-backend/internal/service/history"
	"github.com/heartmarshall/customtrack-backend/internal/service/notification"
	"github.com/heartmarshall/customtrack-backend/internal/service/searchindex"
	"github.com/heartmarshall/customtrack-backend/internal/service/subscription"
	"github.com/heartmarshall/customtrack-backend/internal/transport/rest"
	"github.com/heartmarshall/customtrack-backend/internal/worker"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). Auth is off, so requests
// identify their actor with the X-Actor-Id header.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	clk := clock.WallClock
	collector := metrics.NewCollector()

	customizations := customization.New(pool)
	dependencies := dependency.New(pool)
	subscriptions := subscriptionrepo.New(pool)
	audits := auditrepo.New(pool)
	notifications := notificationrepo.New(pool)
	configs := channelconfig.New(pool)
	deliveries := delivery.New(pool)
	users := userrepo.New(pool)

	dispatchQueue := worker.NewQueue(logger, "dispatch", 1, 16, collector)
	searchQueue := worker.NewQueue(logger, "searchindex", 1, 16, collector)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dispatchQueue.Stop(ctx)
		_ = searchQueue.Stop(ctx)
	})

	dispatcher := dispatch.NewService(logger, clk,
		config.DispatchConfig{Timeout: 2 * time.Second, Workers: 1, QueueSize: 16, SubjectTag: "[CT]"},
		txm, dispatchQueue, users, configs, deliveries, nil,
		notify.NewWebhookSender(&http.Client{Timeout: 2 * time.Second}), collector)

	refresher := searchindex.NewRefresher(logger, clk, txm, searchQueue,
		searchindex.NewLexicalEmbedder(384), searchrepo.New(pool), 5*time.Second, collector)

	changes := changetrack.NewService(logger, clk, customizations, dependencies, subscriptions,
		audits, notifications, txm, dispatcher, refresher, collector)

	gin.SetMode(gin.TestMode)
	router := rest.NewRouter(rest.RouterConfig{
		Logger: logger,
		CORS:   config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Content-Type"},
	}, rest.Handlers{
		Health:         rest.NewHealthHandler(pool, nil, "e2e"),
		Customizations: rest.NewCustomizationHandler(changes, logger),
		History:        rest.NewHistoryHandler(history.NewService(audits), logger),
		Notifications:  rest.NewNotificationHandler(notification.NewService(logger, notifications), logger),
		Subscriptions: rest.NewSubscriptionHandler(
			subscription.NewService(logger, clk, subscriptions, configs, configs, nil, users, txm), logger),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// do sends a JSON request as actor (uuid.Nil for an anonymous system call)
// and decodes the response body into a generic map.
func (ts *testServer) do(t *testing.T, method, path string, actor uuid.UUID, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if actor != uuid.Nil {
		req.Header.Set("X-Actor-Id", actor.String())
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// items returns the "items" array of a list response.
func items(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["items"].([]any)
	require.True(t, ok, "expected items array, got %v", body)

	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		require.True(t, ok)
		out = append(out, m)
	}
	return out
}

// notificationsFor lists actor's notifications about entityID.
func (ts *testServer) notificationsFor(t *testing.T, actor uuid.UUID, entityID string) []map[string]any {
	t.Helper()
	status, body := ts.do(t, http.MethodGet, "/api/v1/notifications?limit=200", actor, nil)
	require.Equal(t, http.StatusOK, status)

	var out []map[string]any
	for _, n := range items(t, body) {
		if n["entity_id"] == entityID {
			out = append(out, n)
		}
	}
	return out
}

func uniqueModule() string {
	return "MOD-" + uuid.NewString()[:8]
}
