// Package family persists family groups and the memberships, links and join
// requests that hang off them. Family tables are an optional feature: a
// deployment may lack any of them, which surfaces as domain.ErrUndefinedTable.
package family

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/adapter/postgres"
)

const (
	tableFamilies     = "families"
	tableMembers      = "family_members"
	tableLinks        = "family_links"
	tableJoinRequests = "family_join_requests"
)

// Repo provides family persistence operations.
type Repo struct {
	db postgres.DB
}

// New creates a new family repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// MemberFamilies returns the families accountID is a member of.
func (r *Repo) MemberFamilies(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.Builder().
		Select("DISTINCT family_id").
		From(tableMembers).
		Where(squirrel.Eq{"user_id": accountID})
	return r.selectIDs(ctx, tableMembers, q)
}

// LinkedFamilies returns the families in which accountID requested or is the
// target of a link.
func (r *Repo) LinkedFamilies(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.Builder().
		Select("DISTINCT family_id").
		From(tableLinks).
		Where(squirrel.Or{
			squirrel.Eq{"requester_id": accountID},
			squirrel.Eq{"target_id": accountID},
		})
	return r.selectIDs(ctx, tableLinks, q)
}

// RemoveMemberships deletes every membership of accountID.
func (r *Repo) RemoveMemberships(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return r.delete(ctx, tableMembers, squirrel.Eq{"user_id": accountID})
}

// RemoveLinks deletes every link accountID participates in.
func (r *Repo) RemoveLinks(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return r.delete(ctx, tableLinks, squirrel.Or{
		squirrel.Eq{"requester_id": accountID},
		squirrel.Eq{"target_id": accountID},
	})
}

// RemoveJoinRequests deletes the join requests made by accountID.
func (r *Repo) RemoveJoinRequests(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return r.delete(ctx, tableJoinRequests, squirrel.Eq{"user_id": accountID})
}

// CountMembers returns the number of memberships left in a family.
func (r *Repo) CountMembers(ctx context.Context, familyID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(tableMembers).
		Where(squirrel.Eq{"family_id": familyID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, tableMembers, familyID)
	}
	return n, nil
}

// DeleteJoinRequests deletes the pending join requests of a family.
func (r *Repo) DeleteJoinRequests(ctx context.Context, familyID uuid.UUID) (int64, error) {
	return r.delete(ctx, tableJoinRequests, squirrel.Eq{"family_id": familyID})
}

// DeleteLinks deletes the links of a family.
func (r *Repo) DeleteLinks(ctx context.Context, familyID uuid.UUID) (int64, error) {
	return r.delete(ctx, tableLinks, squirrel.Eq{"family_id": familyID})
}

// DeleteMembers deletes the memberships of a family.
func (r *Repo) DeleteMembers(ctx context.Context, familyID uuid.UUID) (int64, error) {
	return r.delete(ctx, tableMembers, squirrel.Eq{"family_id": familyID})
}

// DeleteFamily deletes the family row itself.
func (r *Repo) DeleteFamily(ctx context.Context, familyID uuid.UUID) (int64, error) {
	return r.delete(ctx, tableFamilies, squirrel.Eq{"id": familyID})
}

// ListOrphans returns up to limit families that have no members left.
func (r *Repo) ListOrphans(ctx context.Context, limit int) ([]uuid.UUID, error) {
	q := postgres.Builder().
		Select("f.id").
		From(tableFamilies + " f").
		Where("NOT EXISTS (SELECT 1 FROM " + tableMembers + " m WHERE m.family_id = f.id)").
		OrderBy("f.id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.selectIDs(ctx, tableFamilies, q)
}

func (r *Repo) selectIDs(ctx context.Context, table string, q squirrel.SelectBuilder) ([]uuid.UUID, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", table, postgres.ClassifyError(err))
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", table, postgres.ClassifyError(err))
	}
	return ids, nil
}

func (r *Repo) delete(ctx context.Context, table string, pred squirrel.Sqlizer) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s: %w", table, err)
	}

	n, err := postgres.Exec(ctx, r.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}
	return n, nil
}
