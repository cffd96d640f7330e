package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/customtrack-backend/internal/adapter/elastic"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/embedding"
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
	userrepo "github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/customtrack-backend/internal/adapter/redis"
	"github.com/heartmarshall/customtrack-backend/internal/auth"
	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/internal/metrics"
	"github.com/heartmarshall/customtrack-backend/internal/service/changetrack"
	"github.com/heartmarshall/customtrack-backend/internal/service/dispatch"
	"github.com/heartmarshall/customtrack-backend/internal/service/history"
	"github.com/heartmarshall/customtrack-backend/internal/service/notification"
	"github.com/heartmarshall/customtrack-backend/internal/service/searchindex"
	"github.com/heartmarshall/customtrack-backend/internal/service/subscription"
	"github.com/heartmarshall/customtrack-backend/internal/worker"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type tokenValidator interface {
	ValidateActorToken(token string) (auth.Identity, error)
}

type channelConfigReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error)
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type emailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type indexStore interface {
	Upsert(ctx context.Context, kind domain.Kind, entityID uuid.UUID, vector []float32, at time.Time) error
	Delete(ctx context.Context, entityID uuid.UUID) error
}

// container holds the long-lived dependencies shared by the server and the
// maintenance commands.
type container struct {
	pool        *pgxpool.Pool
	redis       *goredis.Client
	cachePinger pinger
	registry    *prometheus.Registry
	tokens      tokenValidator

	dispatchQueue *worker.Queue
	searchQueue   *worker.Queue

	changes       *changetrack.Service
	refresher     *searchindex.Refresher
	history       *history.Service
	notifications *notification.Service
	subscriptions *subscription.Service

	log *slog.Logger
}

func newContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *container, err error) {
	c := &container{log: logger}
	defer func() {
		if err != nil {
			c.close()
		}
	}()

	c.pool, err = postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	txm := postgres.NewTxManager(c.pool)
	clk := clock.WallClock

	collector := metrics.NewCollector()
	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	customizations := customization.New(c.pool)
	dependencies := dependency.New(c.pool)
	subscriptions := subscriptionrepo.New(c.pool)
	audits := auditrepo.New(c.pool)
	notifications := notificationrepo.New(c.pool)
	configs := channelconfig.New(c.pool)
	deliveries := delivery.New(c.pool)
	users := userrepo.New(c.pool)

	var (
		configReader channelConfigReader = configs
		invalidator  cacheInvalidator
	)
	if cfg.Redis.Enabled() {
		c.redis, err = redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		cache := redisadapter.NewChannelConfigCache(logger, c.redis, configs, cfg.Redis.CacheTTL)
		configReader, invalidator = cache, cache
		c.cachePinger = redisadapter.Pinger{Client: c.redis}
	}

	var email emailSender
	if cfg.SMTP.Enabled() {
		email = notify.NewEmailSender(cfg.SMTP)
	}
	webhooks := notify.NewWebhookSender(&http.Client{Timeout: cfg.Dispatch.Timeout})

	c.dispatchQueue = worker.NewQueue(logger, "dispatch", cfg.Dispatch.Workers, cfg.Dispatch.QueueSize, collector)
	c.searchQueue = worker.NewQueue(logger, "searchindex", cfg.Search.Workers, cfg.Search.QueueSize, collector)

	dispatcher := dispatch.NewService(logger, clk, cfg.Dispatch, txm, c.dispatchQueue,
		users, configReader, deliveries, email, webhooks, collector)

	store, err := newIndexStore(cfg, c.pool)
	if err != nil {
		return nil, err
	}
	c.refresher = searchindex.NewRefresher(logger, clk, txm, c.searchQueue,
		newEmbedder(cfg.Search, logger), store, cfg.Search.Timeout, collector)

	c.changes = changetrack.NewService(logger, clk, customizations, dependencies, subscriptions,
		audits, notifications, txm, dispatcher, c.refresher, collector)
	c.history = history.NewService(audits)
	c.notifications = notification.NewService(logger, notifications)
	c.subscriptions = subscription.NewService(logger, clk, subscriptions, configs, configReader,
		invalidator, users, txm)

	if cfg.Auth.Enabled() {
		c.tokens = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	}

	return c, nil
}

// newIndexStore returns the configured search backend, or nil when search
// indexing is switched off.
func newIndexStore(cfg *config.Config, pool *pgxpool.Pool) (indexStore, error) {
	switch cfg.Search.Backend {
	case config.SearchBackendPostgres:
		return searchrepo.New(pool), nil
	case config.SearchBackendElasticsearch:
		indexer, err := elastic.NewIndexer(cfg.Elasticsearch)
		if err != nil {
			return nil, err
		}
		return indexer, nil
	case config.SearchBackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown search backend %q", cfg.Search.Backend)
	}
}

// newEmbedder returns the lexical embedder, or Ollama backed by it.
func newEmbedder(cfg config.SearchConfig, logger *slog.Logger) searchindex.Embedder {
	lexical := searchindex.NewLexicalEmbedder(cfg.Dimension)
	if cfg.Embedder != config.EmbedderOllama {
		return lexical
	}
	ollama := embedding.NewOllama(embedding.OllamaConfig{
		BaseURL: cfg.OllamaURL,
		Model:   cfg.OllamaModel,
		Token:   cfg.OllamaToken,
		Timeout: cfg.Timeout,
	})
	return searchindex.NewFallbackEmbedder(logger, ollama, lexical)
}

// stopQueues drains both background queues.
func (c *container) stopQueues(ctx context.Context) error {
	var errs []error
	for _, q := range []*worker.Queue{c.dispatchQueue, c.searchQueue} {
		if q == nil {
			continue
		}
		if err := q.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// close releases connections. Queues must be stopped first.
func (c *container) close() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	if c.pool != nil {
		c.pool.Close()
	}
}
