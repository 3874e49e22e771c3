package deletion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
)

// Depart removes accountID from every family it belongs to or is linked in,
// together with its join requests, and returns the ids of those families.
// Family tables are optional: a missing one is skipped.
func (s *Service) Depart(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var lists [][]uuid.UUID
	finders := []struct {
		table string
		fn    func(context.Context, uuid.UUID) ([]uuid.UUID, error)
	}{
		{"family_members", s.families.MemberFamilies},
		{"family_links", s.families.LinkedFamilies},
	}
	for _, find := range finders {
		ids, err := find.fn(ctx, accountID)
		if err != nil {
			if domain.IsSchemaDrift(err) {
				s.driftSkipped(ctx, find.table, "", err)
				continue
			}
			return nil, fmt.Errorf("find families in %s: %w", find.table, err)
		}
		lists = append(lists, ids)
	}

	steps := []struct {
		table string
		fn    func(context.Context, uuid.UUID) (int64, error)
	}{
		{"family_links", s.families.RemoveLinks},
		{"family_join_requests", s.families.RemoveJoinRequests},
		{"family_members", s.families.RemoveMemberships},
	}
	for _, step := range steps {
		if _, err := step.fn(ctx, accountID); err != nil {
			if domain.IsSchemaDrift(err) {
				s.driftSkipped(ctx, step.table, "", err)
				continue
			}
			return nil, fmt.Errorf("depart %s: %w", step.table, err)
		}
	}

	return domain.UniqueIDs(lists...), nil
}

// Reap deletes each family of familyIDs that has no members left and returns
// the ids it deleted. A family whose member count cannot be read is skipped.
// Each family is removed in one transaction: join requests, links, members,
// then the family row.
func (s *Service) Reap(ctx context.Context, familyIDs []uuid.UUID) ([]uuid.UUID, error) {
	var reaped []uuid.UUID

	for _, id := range familyIDs {
		n, err := s.families.CountMembers(ctx, id)
		if err != nil {
			s.log.WarnContext(ctx, "family member count failed, family skipped",
				slog.String("family_id", id.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !(domain.FamilyGroup{ID: id, MemberCount: n}).IsOrphan() {
			continue
		}

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			return s.deleteFamily(txCtx, id)
		})
		if err != nil {
			return reaped, fmt.Errorf("reap family %s: %w", id, err)
		}
		reaped = append(reaped, id)
	}

	if len(reaped) > 0 {
		s.log.InfoContext(ctx, "orphan families reaped", slog.Int("count", len(reaped)))
	}
	s.metrics.AddFamiliesReaped(len(reaped))
	return reaped, nil
}

func (s *Service) deleteFamily(ctx context.Context, familyID uuid.UUID) error {
	steps := []struct {
		table string
		fn    func(context.Context, uuid.UUID) (int64, error)
	}{
		{"family_join_requests", s.families.DeleteJoinRequests},
		{"family_links", s.families.DeleteLinks},
		{"family_members", s.families.DeleteMembers},
		{"families", s.families.DeleteFamily},
	}
	for _, step := range steps {
		if _, err := step.fn(ctx, familyID); err != nil {
			if domain.IsSchemaDrift(err) {
				s.driftSkipped(ctx, step.table, "", err)
				continue
			}
			return fmt.Errorf("delete %s: %w", step.table, err)
		}
	}
	return nil
}

// SweepOrphans reaps up to limit families that have no members at all,
// whoever left them. limit <= 0 means no limit.
func (s *Service) SweepOrphans(ctx context.Context, limit int) ([]uuid.UUID, error) {
	ids, err := s.families.ListOrphans(ctx, limit)
	if err != nil {
		if domain.IsSchemaDrift(err) {
			s.driftSkipped(ctx, "families", "", err)
			return nil, nil
		}
		return nil, fmt.Errorf("list orphan families: %w", err)
	}
	return s.Reap(ctx, ids)
}
