package deletion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
	"github.com/medvault/medvault-backend/pkg/ctxutil"
)

// DeleteProfile erases one non-primary profile of the authenticated account:
// its vault files, its record rows and then the profile row. The profile row
// is only deleted once the vault is verified empty.
func (s *Service) DeleteProfile(ctx context.Context, in DeleteProfileInput) (*ProfileResult, error) {
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

	r := s.newRun(ctx, domain.DeletionFlowProfile,
		slog.String("account_id", accountID.String()),
		slog.String("profile_id", in.ProfileID.String()),
	)
	res, err := s.deleteProfile(ctx, r, accountID, in.ProfileID)
	r.finish(ctx, err)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.ProfileDeleted{
		AccountID:         accountID,
		ProfileID:         in.ProfileID,
		RemovedVaultFiles: res.RemovedVaultFiles,
		At:                time.Now().UTC(),
	})
	return res, nil
}

func (s *Service) deleteProfile(ctx context.Context, r *run, accountID, profileID uuid.UUID) (*ProfileResult, error) {
	res := &ProfileResult{Cascade: newCascadeReport()}
	prefixes := []string{profileID.String()}

	err := r.step(ctx, domain.StageResolveOwnership, func(ctx context.Context) error {
		return s.checkProfileDeletable(ctx, accountID, profileID)
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageCleanVault, func(ctx context.Context) error {
		paths, err := s.ListAllPaths(ctx, profileID.String())
		if err != nil {
			return err
		}
		removed, err := s.RemovePaths(ctx, domain.DeletionFlowProfile, paths)
		res.RemovedVaultFiles = removed
		if err != nil {
			r.log.WarnContext(ctx, "vault cleanup incomplete, will retry during verification",
				slog.Int("removed", removed),
				slog.Int("found", len(paths)),
				slog.String("error", err.Error()),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageCascadeTables, func(ctx context.Context) error {
		if err := s.DeleteForProfiles(ctx, res.Cascade, []uuid.UUID{profileID}); err != nil {
			return err
		}
		return s.DeleteForLegacyOwnerKeys(ctx, res.Cascade, prefixes)
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageVerify, func(ctx context.Context) error {
		removed, err := s.verifyVaultWithRetry(ctx, r, prefixes)
		res.RemovedVaultFiles += removed
		return err
	})
	if err != nil {
		return nil, err
	}

	err = r.step(ctx, domain.StageFinalize, func(ctx context.Context) error {
		n, err := s.profiles.DeleteByID(ctx, profileID)
		if err != nil {
			return err
		}
		if n == 0 {
			r.log.WarnContext(ctx, "profile row already gone")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// checkProfileDeletable rejects, before any mutation, a profile that does not
// exist, is not owned by accountID, or is the account's primary profile. An
// unknown profile is reported like a foreign one.
func (s *Service) checkProfileDeletable(ctx context.Context, accountID, profileID uuid.UUID) error {
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrProfileNotOwned
		}
		return fmt.Errorf("load profile: %w", err)
	}

	owners, err := s.ResolveOwnerIDs(ctx, profileID)
	if err != nil {
		return err
	}
	if !slices.Contains(owners, accountID) {
		return domain.ErrProfileNotOwned
	}
	if p.IsPrimary {
		return domain.ErrPrimaryProfile
	}
	return nil
}

// verifyVaultWithRetry checks the prefixes are empty, removing what is left
// and checking again up to ProfileVerifyPasses times. It returns the number
// of files removed by the retries.
func (s *Service) verifyVaultWithRetry(ctx context.Context, r *run, prefixes []string) (int, error) {
	removed := 0
	for cycle := 0; ; cycle++ {
		err := s.AssertVaultEmpty(ctx, prefixes)

		var residue *domain.ResidueError
		if !errors.As(err, &residue) {
			return removed, err
		}
		if cycle >= s.cfg.ProfileVerifyPasses {
			return removed, residue
		}

		r.log.WarnContext(ctx, "vault residue found, cleaning again",
			slog.Int("pass", cycle+1),
			slog.Int("remaining", residue.Remaining()),
			slog.Any("sample", residue.Sample()),
		)
		n, rmErr := s.RemovePaths(ctx, domain.DeletionFlowProfile, residue.Paths)
		removed += n
		if rmErr != nil {
			r.log.WarnContext(ctx, "vault cleanup retry failed", slog.String("error", rmErr.Error()))
		}
	}
}
