package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and
// the pgxmock pool used in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is a Querier that can open transactions.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// unexported context key type for storing tx
type txCtxKey struct{}

// withTx puts a transaction into the context.
func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns db.
func QuerierFromCtx(ctx context.Context, db DB) Querier {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return db
}

// Exec runs a single statement and returns the affected row count with the
// error already classified (see ClassifyError).
//
// Inside a transaction the statement runs under a savepoint, so a failing
// statement (a missing table, say) is rolled back on its own and the outer
// transaction stays usable for the statements that follow.
func Exec(ctx context.Context, db DB, sql string, args ...any) (int64, error) {
	tx, ok := txFromCtx(ctx)
	if !ok {
		tag, err := db.Exec(ctx, sql, args...)
		if err != nil {
			return 0, ClassifyError(err)
		}
		return tag.RowsAffected(), nil
	}

	sp, err := tx.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("open savepoint: %w", err)
	}

	tag, err := sp.Exec(ctx, sql, args...)
	if err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return 0, fmt.Errorf("rollback savepoint: %w (original error: %v)", rbErr, err)
		}
		return 0, ClassifyError(err)
	}

	if err := sp.Commit(ctx); err != nil {
		return 0, fmt.Errorf("release savepoint: %w", err)
	}

	return tag.RowsAffected(), nil
}
