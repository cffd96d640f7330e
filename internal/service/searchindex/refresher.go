// Package searchindex keeps the customization search index in step with
// writes. Refreshes run after commit on a dedicated worker queue and are
// best-effort: a failed refresh is logged and counted, never surfaced to the
// writer.
package searchindex

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/internal/domain"
	"github.com/heartmarshall/customtrack-backend/internal/metrics"
	"github.com/heartmarshall/customtrack-backend/internal/worker"
	"github.com/juju/clock"
)

type indexStore interface {
	Upsert(ctx context.Context, kind domain.Kind, entityID uuid.UUID, vector []float32, at time.Time) error
	Delete(ctx context.Context, entityID uuid.UUID) error
}

type afterCommitter interface {
	AfterCommit(ctx context.Context, fn func(ctx context.Context))
}

type taskQueue interface {
	Submit(task worker.Task) bool
}

type refreshMetrics interface {
	SearchRefresh(result string)
}

// searchable is a tracked entity that exposes a text blob for indexing.
type searchable interface {
	domain.Trackable
	SearchText() string
}

// document is the part of an entity the index needs, captured at write time.
type document struct {
	id   uuid.UUID
	kind domain.Kind
	text string
}

func documentOf(entity domain.Trackable) (document, bool) {
	s, ok := entity.(searchable)
	if !ok {
		return document{}, false
	}
	return document{
		id:   s.TrackedID(),
		kind: domain.Kind(s.ToFieldMap().String(domain.FieldKind)),
		text: s.SearchText(),
	}, true
}

// Refresher refreshes index entries for written entities.
type Refresher struct {
	tx       afterCommitter
	queue    taskQueue
	embedder Embedder
	store    indexStore
	metrics  refreshMetrics
	clock    clock.Clock
	timeout  time.Duration
	log      *slog.Logger
}

// NewRefresher creates a Refresher. A nil store disables indexing; metrics
// may be nil.
func NewRefresher(
	log *slog.Logger,
	clk clock.Clock,
	tx afterCommitter,
	queue taskQueue,
	embedder Embedder,
	store indexStore,
	timeout time.Duration,
	metrics refreshMetrics,
) *Refresher {
	return &Refresher{
		tx:       tx,
		queue:    queue,
		embedder: embedder,
		store:    store,
		metrics:  metrics,
		clock:    clk,
		timeout:  timeout,
		log:      log.With("service", "searchindex"),
	}
}

// Enabled reports whether an index backend is configured.
func (r *Refresher) Enabled() bool { return r.store != nil }

// Enqueue refreshes the entry for entity once the transaction in ctx commits.
func (r *Refresher) Enqueue(ctx context.Context, entity domain.Trackable) {
	if !r.Enabled() {
		return
	}
	doc, ok := documentOf(entity)
	if !ok {
		return
	}

	r.tx.AfterCommit(ctx, func(ctx context.Context) {
		r.submit(ctx, doc.id, func(taskCtx context.Context) {
			if err := r.refresh(taskCtx, doc); err != nil {
				r.log.WarnContext(taskCtx, "search index refresh failed",
					slog.String("entity_id", doc.id.String()),
					slog.String("error", err.Error()),
				)
			}
		})
	})
}

// Remove drops the entry for entityID once the transaction in ctx commits.
func (r *Refresher) Remove(ctx context.Context, entityID uuid.UUID) {
	if !r.Enabled() {
		return
	}

	r.tx.AfterCommit(ctx, func(ctx context.Context) {
		r.submit(ctx, entityID, func(taskCtx context.Context) {
			err := r.store.Delete(taskCtx, entityID)
			r.observe(err)
			if err != nil {
				r.log.WarnContext(taskCtx, "search index delete failed",
					slog.String("entity_id", entityID.String()),
					slog.String("error", err.Error()),
				)
			}
		})
	})
}

// Refresh synchronously rebuilds the entry for entity.
func (r *Refresher) Refresh(ctx context.Context, entity domain.Trackable) error {
	if !r.Enabled() {
		return nil
	}
	doc, ok := documentOf(entity)
	if !ok {
		return fmt.Errorf("refresh %s: entity has no search text", entity.TrackedID())
	}
	return r.refresh(ctx, doc)
}

func (r *Refresher) refresh(ctx context.Context, doc document) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	vec, err := r.embedder.Embed(ctx, doc.text)
	if err != nil {
		r.observe(err)
		return fmt.Errorf("embed %s: %w", doc.id, err)
	}

	err = r.store.Upsert(ctx, doc.kind, doc.id, vec, r.clock.Now().UTC())
	r.observe(err)
	if err != nil {
		return fmt.Errorf("index %s: %w", doc.id, err)
	}

	r.log.DebugContext(ctx, "search index refreshed",
		slog.String("entity_id", doc.id.String()),
		slog.String("embedder", r.embedder.Name()),
	)
	return nil
}

func (r *Refresher) submit(ctx context.Context, entityID uuid.UUID, task worker.Task) {
	if !r.queue.Submit(task) {
		r.log.WarnContext(ctx, "search index refresh dropped", slog.String("entity_id", entityID.String()))
	}
}

func (r *Refresher) observe(err error) {
	if r.metrics == nil {
		return
	}
	if err != nil {
		r.metrics.SearchRefresh(metrics.ResultError)
		return
	}
	r.metrics.SearchRefresh(metrics.ResultOK)
}
