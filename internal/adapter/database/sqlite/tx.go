package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
)

type txKey struct{}

// Querier is satisfied by both *sql.DB and *sql.Tx, so repository code
// is identical inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Runner returns the ambient transaction when one is in flight, the bare
// pool otherwise.
func (db *DB) Runner(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return db.DB
}

// WithinTx runs fn inside a transaction carried in the context. A nested
// call joins the ambient transaction instead of opening a second one.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return err
	}

	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	return tx.Commit()
}
