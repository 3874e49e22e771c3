package deletion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
)

const profilesTable = "profiles"

// errNoOwnershipColumn means neither ownership column exists, so ownership
// cannot be established at all. Deliberately not a drift error: it is fatal.
var errNoOwnershipColumn = errors.New("profiles table has no ownership column")

// ListProfilesForAccount returns every profile owned by accountID under
// either ownership column. Both columns are always queried and the results
// unioned by profile id.
func (s *Service) ListProfilesForAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Profile, error) {
	var (
		lists   [][]domain.Profile
		missing int
	)

	for _, col := range domain.OwnerColumns() {
		profiles, err := s.profiles.ListByOwner(ctx, col, accountID)
		if err != nil {
			if errors.Is(err, domain.ErrUndefinedColumn) {
				missing++
				s.driftSkipped(ctx, profilesTable, col.String(), err)
				continue
			}
			return nil, fmt.Errorf("list profiles by %s: %w", col, err)
		}
		lists = append(lists, profiles)
	}

	if missing == len(domain.OwnerColumns()) {
		return nil, errNoOwnershipColumn
	}

	return domain.UnionProfiles(lists...), nil
}

// ResolveOwnerIDs returns the distinct account ids recorded on a profile.
// Returns domain.ErrNotFound when the profile does not exist.
func (s *Service) ResolveOwnerIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, col := range domain.OwnerColumns() {
		owner, err := s.profiles.OwnerOf(ctx, profileID, col)
		if err != nil {
			if errors.Is(err, domain.ErrUndefinedColumn) {
				s.driftSkipped(ctx, profilesTable, col.String(), err)
				continue
			}
			return nil, fmt.Errorf("resolve %s of profile: %w", col, err)
		}
		if owner != nil {
			ids = append(ids, *owner)
		}
	}
	return domain.UniqueIDs(ids), nil
}

// driftSkipped logs and counts a pass skipped because its table or column
// does not exist in this deployment.
func (s *Service) driftSkipped(ctx context.Context, table, column string, err error) {
	s.log.WarnContext(ctx, "schema drift, pass skipped",
		slog.String("table", table),
		slog.String("column", column),
		slog.String("error", err.Error()),
	)
	s.metrics.RecordDriftSkip(table, column)
}
