// Package worker runs post-commit side effects on a bounded in-process queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"
)

// Task is a unit of background work. It must honour ctx cancellation.
type Task func(ctx context.Context)

// dropRecorder counts tasks that were never run.
type dropRecorder interface {
	TaskDropped(queue string)
}

// Queue is a fixed pool of workers fed by a bounded channel. Submit never
// blocks: when the buffer is full the task is dropped and logged.
type Queue struct {
	name    string
	log     *slog.Logger
	metrics dropRecorder

	mu     sync.RWMutex
	closed bool
	tasks  chan Task

	ctx    context.Context
	cancel context.CancelFunc
	wg     conc.WaitGroup
}

// NewQueue starts workers goroutines consuming a buffer of size tasks.
// metrics may be nil.
func NewQueue(log *slog.Logger, name string, workers, size int, metrics dropRecorder) *Queue {
	if workers < 1 {
		workers = 1
	}
	if size < 1 {
		size = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		name:    name,
		log:     log.With("queue", name),
		metrics: metrics,
		tasks:   make(chan Task, size),
		ctx:     ctx,
		cancel:  cancel,
	}

	for range workers {
		q.wg.Go(q.loop)
	}

	return q
}

// Submit enqueues task. It reports false when the task was dropped because
// the queue is full or stopped.
func (q *Queue) Submit(task Task) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.drop("queue stopped")
		return false
	}

	select {
	case q.tasks <- task:
		return true
	default:
		q.drop("queue full")
		return false
	}
}

// Stop refuses new tasks and waits for queued ones to finish. When ctx ends
// first, running tasks are cancelled and tasks still queued are dropped;
// Stop then returns ctx.Err() once the workers have exited.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.cancel()
		return nil
	case <-ctx.Done():
		q.cancel()
		<-done
		return fmt.Errorf("worker queue %s: stop: %w", q.name, ctx.Err())
	}
}

func (q *Queue) loop() {
	for task := range q.tasks {
		if q.ctx.Err() != nil {
			q.drop("queue cancelled")
			continue
		}
		q.run(task)
	}
}

func (q *Queue) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Error("task panicked", slog.Any("panic", r))
		}
	}()
	task(q.ctx)
}

func (q *Queue) drop(reason string) {
	q.log.Warn("task dropped", slog.String("reason", reason))
	if q.metrics != nil {
		q.metrics.TaskDropped(q.name)
	}
}
