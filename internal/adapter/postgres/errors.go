package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medvault/medvault-backend/internal/domain"
)

// SQLSTATE codes the deletion pipeline cares about.
const (
	codeUndefinedTable  = "42P01"
	codeUndefinedColumn = "42703"
	codeUniqueViolation = "23505"
	codeForeignKey      = "23503"
	codeCheckViolation  = "23514"
)

// ClassifyError converts pgx/pgconn errors to domain errors.
// The original error stays in the chain so callers can still inspect it.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedTable:
			return fmt.Errorf("%w: %w", domain.ErrUndefinedTable, err)
		case codeUndefinedColumn:
			return fmt.Errorf("%w: %w", domain.ErrUndefinedColumn, err)
		case codeUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
		case codeForeignKey:
			// On a delete path a foreign key violation means something still
			// references the row: a conflict, never "not found".
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case codeCheckViolation:
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
	}

	return err
}

// MapError classifies err and prefixes it with the entity and id it concerns.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, id, ClassifyError(err))
}
