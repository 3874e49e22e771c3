// Package rows deletes rows from an arbitrary table by a single column.
package rows

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/medvault/medvault-backend/internal/adapter/postgres"
)

// Deleter issues DELETE ... WHERE column IN (...) statements.
type Deleter struct {
	db postgres.DB
}

// NewDeleter creates a Deleter.
func NewDeleter(db postgres.DB) *Deleter {
	return &Deleter{db: db}
}

// DeleteWhereIn removes the rows of table whose column matches any of values
// and returns how many were removed. An empty values list is a no-op.
//
// Errors are classified: a missing table or column unwraps to
// domain.ErrUndefinedTable / domain.ErrUndefinedColumn.
func (d *Deleter) DeleteWhereIn(ctx context.Context, table, column string, values []any) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete(postgres.Ident(table)).
		Where(squirrel.Eq{postgres.Ident(column): values}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s.%s: %w", table, column, err)
	}

	n, err := postgres.Exec(ctx, d.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s.%s: %w", table, column, err)
	}
	return n, nil
}
