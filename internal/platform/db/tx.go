package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

// DBTxKey carries the transaction for the current request, if any.
const DBTxKey contextKey = "db_tx"

// TxFromContext retrieves the active transaction from context, or nil.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(DBTxKey).(pgx.Tx)
	return tx
}

// WithTx runs fn inside a transaction. The transaction is stored in the
// context passed to fn so that repositories pick it up for every statement.
// It commits when fn returns nil and rolls back otherwise.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, DBTxKey, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// TxRunner runs fn with transactional guarantees when backed by a pool.
// Services hold a TxRunner instead of the pool itself so tests can pass nil.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// PoolTxRunner returns a TxRunner that wraps fn in a pool transaction.
func PoolTxRunner(pool *pgxpool.Pool) TxRunner {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return WithTx(ctx, pool, fn)
	}
}

// Run invokes fn through the runner, or directly when the runner is nil.
func (r TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if r == nil {
		return fn(ctx)
	}
	return r(ctx, fn)
}
