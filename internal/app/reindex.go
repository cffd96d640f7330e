package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/customtrack-backend/internal/config"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// Reindex walks every customization and rebuilds its search index entry
// synchronously. Entries that fail are logged and counted; the run fails
// only when nothing could be listed or every entry failed.
func Reindex(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	c, err := newContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.close()
	defer func() {
		if err := c.stopQueues(context.Background()); err != nil {
			logger.Warn("stop queues", slog.String("error", err.Error()))
		}
	}()

	if !c.refresher.Enabled() {
		return errors.New("search backend is disabled")
	}

	var indexed, failed int
	page := domain.Page{Limit: domain.MaxPageLimit}
	for {
		batch, err := c.changes.ListEntities(ctx, domain.CustomizationFilter{}, page)
		if err != nil {
			return fmt.Errorf("list customizations at offset %d: %w", page.Offset, err)
		}
		for _, entity := range batch {
			if err := c.refresher.Refresh(ctx, entity); err != nil {
				failed++
				logger.WarnContext(ctx, "reindex entry failed",
					slog.String("entity_id", entity.ID.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			indexed++
		}
		if len(batch) < page.Limit {
			break
		}
		page.Offset += page.Limit
	}

	logger.InfoContext(ctx, "reindex completed",
		slog.Int("indexed", indexed),
		slog.Int("failed", failed),
	)
	if failed > 0 && indexed == 0 {
		return fmt.Errorf("all %d entries failed", failed)
	}
	return nil
}
