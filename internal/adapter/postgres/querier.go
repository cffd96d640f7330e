package postgres

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// unexported context key type for storing tx state
type txCtxKey struct{}

// txState is the per-transaction value carried in the context.
type txState struct {
	tx pgx.Tx

	mu    sync.Mutex
	hooks []func(ctx context.Context)
}

func (s *txState) addHook(fn func(ctx context.Context)) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *txState) takeHooks() []func(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hooks := s.hooks
	s.hooks = nil
	return hooks
}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, st *txState) context.Context {
	return context.WithValue(ctx, txCtxKey{}, st)
}

func txFromCtx(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txCtxKey{}).(*txState)
	return st, ok && st != nil
}

// InTx reports whether ctx carries an open transaction.
func InTx(ctx context.Context) bool {
	_, ok := txFromCtx(ctx)
	return ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns db.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if st, ok := txFromCtx(ctx); ok {
		return st.tx
	}
	return db
}
