package deletion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
)

// AssertNoResidue re-enumerates every owner prefix and re-resolves the
// account's profiles. Anything found is returned as a *domain.ResidueError.
func (s *Service) AssertNoResidue(ctx context.Context, ownerPrefixes []string, accountID uuid.UUID) error {
	paths, err := s.remainingPaths(ctx, ownerPrefixes)
	if err != nil {
		return err
	}

	profiles, err := s.ListProfilesForAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("re-resolve profiles: %w", err)
	}

	residue := &domain.ResidueError{
		Paths:      paths,
		ProfileIDs: domain.ProfileIDs(profiles),
		SampleSize: s.cfg.ResidueSampleSize,
	}
	if residue.Empty() {
		return nil
	}
	return residue
}

// AssertVaultEmpty re-enumerates every owner prefix and returns a
// *domain.ResidueError listing any path still present.
func (s *Service) AssertVaultEmpty(ctx context.Context, ownerPrefixes []string) error {
	paths, err := s.remainingPaths(ctx, ownerPrefixes)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return nil
	}
	return &domain.ResidueError{Paths: paths, SampleSize: s.cfg.ResidueSampleSize}
}

func (s *Service) remainingPaths(ctx context.Context, ownerPrefixes []string) ([]string, error) {
	set := make(domain.PathSet)
	for _, prefix := range ownerPrefixes {
		paths, err := s.ListAllPaths(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("re-enumerate vault: %w", err)
		}
		set.Add(paths...)
	}
	return set.Sorted(), nil
}
