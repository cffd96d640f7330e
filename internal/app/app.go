// Package app wires configuration, adapters and services into the running
// server and the maintenance commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/customtrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// adapters, starts the HTTP server and blocks until ctx is cancelled or the
// server fails. Shutdown drains the background queues.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("search_backend", cfg.Search.Backend),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
		slog.Bool("email_enabled", cfg.SMTP.Enabled()),
		slog.Bool("cache_enabled", cfg.Redis.Enabled()),
	)

	c, err := newContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	gin.SetMode(cfg.Server.GinMode)
	router := rest.NewRouter(rest.RouterConfig{
		Logger:          logger,
		CORS:            cfg.CORS,
		Tokens:          c.tokens,
		Limiter:         limiter,
		WritesPerMinute: cfg.RateLimit.WritesPerMinute,
		Metrics:         c.registry,
	}, rest.Handlers{
		Health:         rest.NewHealthHandler(c.pool, c.cachePinger, Version),
		Customizations: rest.NewCustomizationHandler(c.changes, logger),
		History:        rest.NewHistoryHandler(c.history, logger),
		Notifications:  rest.NewNotificationHandler(c.notifications, logger),
		Subscriptions:  rest.NewSubscriptionHandler(c.subscriptions, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if err := c.stopQueues(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
