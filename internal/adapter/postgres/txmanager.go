package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// beginner starts transactions. Satisfied by *pgxpool.Pool and pgxmock pools.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// A RunInTx call inside another RunInTx callback joins the outer transaction:
// it neither commits nor rolls back, and its hooks run with the outer ones.
type TxManager struct {
	db beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits, then runs hooks registered with AfterCommit in order.
// On error from fn: rolls back, drops hooks and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	st := &txState{tx: tx}
	txCtx := withTx(ctx, st)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	for _, hook := range st.takeHooks() {
		hook(ctx)
	}

	return nil
}

// AfterCommit schedules fn to run after the transaction carried by ctx commits.
// Without a transaction in ctx, fn runs immediately. fn receives a context
// without the transaction, so it must not rely on uncommitted state.
func (m *TxManager) AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if st, ok := txFromCtx(ctx); ok {
		st.addHook(fn)
		return
	}
	fn(ctx)
}
