// Command cleanup removes read and broadcast notifications older than the
// retention window (RETENTION_NOTIFICATION_DAYS). Unread notifications
// addressed to a user are never removed. Run it from cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/customtrack-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/customtrack-backend/internal/app"
	"github.com/heartmarshall/customtrack-backend/internal/config"
)

const runTimeout = 5 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("cleanup: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -cfg.Retention.NotificationDays)
	deleted, err := notification.New(pool).DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("delete notifications before %s: %w", cutoff.Format(time.DateOnly), err)
	}

	logger.InfoContext(ctx, "notification cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
		slog.Int("retention_days", cfg.Retention.NotificationDays),
	)
	return nil
}
