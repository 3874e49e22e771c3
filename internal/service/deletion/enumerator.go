package deletion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/medvault/medvault-backend/internal/domain"
)

var errWalkTooDeep = errors.New("vault walk exceeded maximum depth")

// fileMetadataKeys are metadata fields only ever present on file entries.
var fileMetadataKeys = []string{"size", "mimetype", "eTag", "contentLength"}

// isFileEntry decides whether a folder-listing entry is a file. Files carry
// an object id or file-shaped metadata; folders carry neither. This is the
// only storage-provider-specific rule of the walk.
func isFileEntry(e domain.VaultEntry) bool {
	if e.ID != nil {
		return true
	}
	for _, k := range fileMetadataKeys {
		if v, ok := e.Metadata[k]; ok && v != nil {
			return true
		}
	}
	return false
}

// ListAllPaths returns every vault object path under ownerPrefix, including
// an object named exactly ownerPrefix. The catalog query and the recursive
// walk run concurrently and their results are unioned; one of them failing
// is tolerated, both failing is fatal. The result is sorted.
func (s *Service) ListAllPaths(ctx context.Context, ownerPrefix string) ([]string, error) {
	if ownerPrefix == "" {
		return nil, domain.NewValidationError("owner_prefix", "required")
	}

	var (
		catalogPaths, walkPaths []string
		catalogErr, walkErr     error
		g                       errgroup.Group
	)

	g.Go(func() error {
		catalogPaths, catalogErr = s.catalog.ListAll(ctx, s.cfg.Bucket, ownerPrefix, s.cfg.CatalogPageSize)
		return nil
	})
	g.Go(func() error {
		walkPaths, walkErr = s.walk(ctx, ownerPrefix)
		return nil
	})
	_ = g.Wait()

	if catalogErr != nil && walkErr != nil {
		return nil, fmt.Errorf("enumerate %s: %w", ownerPrefix, errors.Join(catalogErr, walkErr))
	}
	if catalogErr != nil {
		s.log.WarnContext(ctx, "catalog enumeration failed, using walk only",
			slog.String("prefix", ownerPrefix),
			slog.String("error", catalogErr.Error()),
		)
	}
	if walkErr != nil {
		s.log.WarnContext(ctx, "vault walk failed, using catalog only",
			slog.String("prefix", ownerPrefix),
			slog.String("error", walkErr.Error()),
		)
	}

	set := make(domain.PathSet)
	for _, p := range append(catalogPaths, walkPaths...) {
		if domain.UnderPrefix(p, ownerPrefix) {
			set.Add(p)
		}
	}
	return set.Sorted(), nil
}

// walk lists ownerPrefix folder by folder through the list API.
func (s *Service) walk(ctx context.Context, ownerPrefix string) ([]string, error) {
	var paths []string

	// A marker object named exactly like the prefix lives in the bucket root.
	err := s.listFolder(ctx, "", ownerPrefix, func(e domain.VaultEntry) error {
		if e.Name == ownerPrefix && isFileEntry(e) {
			paths = append(paths, ownerPrefix)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list bucket root: %w", err)
	}

	var descend func(folder string, depth int) error
	descend = func(folder string, depth int) error {
		if depth > s.cfg.MaxWalkDepth {
			return fmt.Errorf("%w at %s", errWalkTooDeep, folder)
		}
		return s.listFolder(ctx, folder, "", func(e domain.VaultEntry) error {
			if e.Name == "" {
				return nil
			}
			full := folder + "/" + e.Name
			if isFileEntry(e) {
				paths = append(paths, full)
				return nil
			}
			return descend(full, depth+1)
		})
	}

	if err := descend(ownerPrefix, 0); err != nil {
		return nil, err
	}
	return paths, nil
}

// listFolder pages through the direct children of folder, calling fn for each.
func (s *Service) listFolder(ctx context.Context, folder, search string, fn func(domain.VaultEntry) error) error {
	limit := s.cfg.ListPageSize
	for offset := 0; ; offset += limit {
		entries, err := s.vault.List(ctx, folder, limit, offset, search)
		if err != nil {
			return fmt.Errorf("list %q: %w", folder, err)
		}
		for _, e := range entries {
			if err := fn(e); err != nil {
				return err
			}
		}
		if len(entries) < limit {
			return nil
		}
	}
}
