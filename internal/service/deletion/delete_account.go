package deletion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
	"github.com/medvault/medvault-backend/pkg/ctxutil"
)

// DeleteAccount erases the authenticated account: every profile it owns, all
// of their vault files and record rows, its family memberships, and finally
// the identity itself. The confirmation is checked before anything runs.
func (s *Service) DeleteAccount(ctx context.Context, in DeleteAccountInput) (*AccountResult, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, "account:"+accountID.String())
	if err != nil {
		return nil, err
	}
	defer unlock()

	r := s.newRun(ctx, domain.DeletionFlowAccount, slog.String("account_id", accountID.String()))
	res, err := s.deleteAccount(ctx, r, accountID)
	r.finish(ctx, err)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.AccountDeleted{
		AccountID:  accountID,
		Mode:       res.Mode,
		ProfileIDs: res.profileIDs,
		At:         time.Now().UTC(),
	})
	return &res.AccountResult, nil
}

type accountRun struct {
	AccountResult
	profileIDs []uuid.UUID
}

func (s *Service) deleteAccount(ctx context.Context, r *run, accountID uuid.UUID) (*accountRun, error) {
	res := &accountRun{AccountResult: AccountResult{Cascade: newCascadeReport()}}
	var prefixes []string

	err := r.step(ctx, domain.StageResolveOwnership, func(ctx context.Context) error {
		profiles, err := s.ListProfilesForAccount(ctx, accountID)
		if err != nil {
			return err
		}
		res.profileIDs = domain.ProfileIDs(profiles)
		for _, id := range res.profileIDs {
			prefixes = append(prefixes, id.String())
		}
		prefixes = append(prefixes, accountID.String())

		r.log.InfoContext(ctx, "ownership resolved", slog.Int("profiles", len(profiles)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageCleanVault, func(ctx context.Context) error {
		set := make(domain.PathSet)
		for _, prefix := range prefixes {
			paths, err := s.ListAllPaths(ctx, prefix)
			if err != nil {
				return err
			}
			set.Add(paths...)
		}
		removed, err := s.RemovePaths(ctx, domain.DeletionFlowAccount, set.Sorted())
		res.VaultFilesRemoved = removed
		return err
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageCascadeTables, func(ctx context.Context) error {
		report := res.Cascade
		if err := s.DeleteForProfiles(ctx, report, res.profileIDs); err != nil {
			return err
		}
		if err := s.DeleteForAccounts(ctx, report, []uuid.UUID{accountID}); err != nil {
			return err
		}
		if err := s.DeleteForLegacyOwnerKeys(ctx, report, prefixes); err != nil {
			return err
		}
		if err := s.deleteAccountProfiles(ctx, report, accountID); err != nil {
			return err
		}
		res.ProfilesDeleted = int(report.Deleted[profilesTable])

		r.log.InfoContext(ctx, "tables cleared",
			slog.Int64("rows", report.Total()),
			slog.Any("tables", report.Tables()),
			slog.Int("drift_skips", len(report.Skipped)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageReapFamilies, func(ctx context.Context) error {
		familyIDs, err := s.Depart(ctx, accountID)
		if err != nil {
			return err
		}
		res.FamiliesReaped, err = s.Reap(ctx, familyIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageVerify, func(ctx context.Context) error {
		return s.AssertNoResidue(ctx, prefixes, accountID)
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageFinalize, func(ctx context.Context) error {
		mode, err := s.deleteIdentity(ctx, accountID)
		res.Mode = mode
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// deleteIdentity hard-deletes the identity, falling back to a soft delete
// when the hard delete is rejected. An identity that is already gone counts
// as hard-deleted.
func (s *Service) deleteIdentity(ctx context.Context, accountID uuid.UUID) (domain.DeletionMode, error) {
	hardErr := s.identity.DeleteUser(ctx, accountID, false)
	if hardErr == nil || errors.Is(hardErr, domain.ErrNotFound) {
		return domain.DeletionModeHard, nil
	}
	if ctx.Err() != nil {
		return "", hardErr
	}

	s.log.WarnContext(ctx, "hard identity delete rejected, falling back to soft delete",
		slog.String("account_id", accountID.String()),
		slog.String("error", hardErr.Error()),
	)
	s.metrics.RecordIdentityFallback()

	softErr := s.identity.DeleteUser(ctx, accountID, true)
	if softErr == nil || errors.Is(softErr, domain.ErrNotFound) {
		return domain.DeletionModeSoft, nil
	}
	return "", fmt.Errorf("delete identity: hard: %v; soft: %w", hardErr, softErr)
}
