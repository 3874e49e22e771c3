// Package profile reads and deletes rows of the profiles table. Ownership is
// recorded in auth_id, user_id or both depending on the deployment, so every
// query touches at most one ownership column and reports a missing column as
// domain.ErrUndefinedColumn for the caller to decide on.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medvault/medvault-backend/internal/adapter/postgres"
	"github.com/medvault/medvault-backend/internal/domain"
)

const table = "profiles"

// Repo provides profile persistence operations.
type Repo struct {
	db postgres.DB
}

// New creates a new profile repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ListByOwner returns the profiles whose column equals accountID, oldest first.
// The matched ownership field is filled in; the other one is left nil.
func (r *Repo) ListByOwner(ctx context.Context, column domain.OwnerColumn, accountID uuid.UUID) ([]domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select("id", "is_primary", "created_at").
		From(table).
		Where(squirrel.Eq{postgres.Ident(column.String()): accountID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, column)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.IsPrimary, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		owner := accountID
		switch column {
		case domain.OwnerColumnAuthID:
			p.AuthID = &owner
		case domain.OwnerColumnUserID:
			p.UserID = &owner
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table, column)
	}

	return profiles, nil
}

// GetByID returns a profile without its ownership fields.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select("id", "is_primary", "created_at").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build query: %w", err)
	}

	var p domain.Profile
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&p.ID, &p.IsPrimary, &p.CreatedAt)
	if err != nil {
		return domain.Profile{}, postgres.MapError(err, "profile", id)
	}
	return p, nil
}

// OwnerOf returns the value of one ownership column for a profile; nil when
// the column is NULL.
func (r *Repo) OwnerOf(ctx context.Context, id uuid.UUID, column domain.OwnerColumn) (*uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select(postgres.Ident(column.String())).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var owner *uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, postgres.MapError(err, "profile", id)
		}
		return nil, postgres.MapError(err, table, column)
	}
	return owner, nil
}

// DeleteByID removes one profile row and returns the number of rows removed.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	n, err := postgres.Exec(ctx, r.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("profile %s: %w", id, err)
	}
	return n, nil
}

// DeleteByOwner removes every profile whose column references one of accountIDs.
func (r *Repo) DeleteByOwner(ctx context.Context, column domain.OwnerColumn, accountIDs []uuid.UUID) (int64, error) {
	if len(accountIDs) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{postgres.Ident(column.String()): accountIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	n, err := postgres.Exec(ctx, r.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", table, column, err)
	}
	return n, nil
}
