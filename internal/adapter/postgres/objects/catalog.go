// Package objects reads the object store's catalog table (storage.objects)
// directly, which lists every object of a bucket regardless of folder depth.
package objects

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/medvault/medvault-backend/internal/adapter/postgres"
)

var catalogTable = postgres.Ident("storage", "objects")

// Catalog lists object names from storage.objects.
type Catalog struct {
	db postgres.DB
}

// NewCatalog creates a Catalog.
func NewCatalog(db postgres.DB) *Catalog {
	return &Catalog{db: db}
}

// ListPage returns up to limit object names of bucket that equal prefix or
// live beneath prefix + "/", ordered by name and starting at offset.
func (c *Catalog) ListPage(ctx context.Context, bucket, prefix string, limit, offset int) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("name").
		From(catalogTable).
		Where(squirrel.Eq{"bucket_id": bucket}).
		Where(squirrel.Or{
			squirrel.Eq{"name": prefix},
			squirrel.Like{"name": escapeLike(prefix) + "/%"},
		}).
		OrderBy("name").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build catalog query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, c.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage catalog: %w", postgres.ClassifyError(err))
	}
	defer rows.Close()

	names := make([]string, 0, limit)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan object name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage catalog: %w", postgres.ClassifyError(err))
	}
	return names, nil
}

// ListAll pages through ListPage until a short page and returns every name.
func (c *Catalog) ListAll(ctx context.Context, bucket, prefix string, pageSize int) ([]string, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("catalog page size must be positive, got %d", pageSize)
	}

	var all []string
	for offset := 0; ; offset += pageSize {
		page, err := c.ListPage(ctx, bucket, prefix, pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
