package deletion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/medvault/medvault-backend/internal/domain"
)

// RemovePaths deletes paths from the vault in batches of RemoveBatchSize and
// returns how many were removed. The first failing batch aborts the removal;
// the count then covers only the batches before it.
func (s *Service) RemovePaths(ctx context.Context, flow domain.DeletionFlow, paths []string) (int, error) {
	size := s.cfg.RemoveBatchSize
	batches := (len(paths) + size - 1) / size

	removed := 0
	for i := 0; i < len(paths); i += size {
		end := min(i+size, len(paths))
		if err := s.vault.Remove(ctx, paths[i:end]); err != nil {
			s.metrics.AddFilesRemoved(flow.String(), removed)
			return removed, fmt.Errorf("remove batch %d/%d: %w", i/size+1, batches, err)
		}
		removed += end - i
	}

	if removed > 0 {
		s.log.InfoContext(ctx, "vault files removed",
			slog.String("flow", flow.String()),
			slog.Int("count", removed),
			slog.Int("batches", batches),
		)
	}
	s.metrics.AddFilesRemoved(flow.String(), removed)
	return removed, nil
}
