// Package storage is a client for the object store's REST API, scoped to one
// bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/medvault/medvault-backend/internal/adapter/supabase"
	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/domain"
)

// Client talks to /storage/v1 for a single bucket.
type Client struct {
	http   *resty.Client
	bucket string
	log    *slog.Logger
}

// NewClient creates a storage client for bucket.
func NewClient(cfg config.SupabaseConfig, bucket string, logger *slog.Logger) *Client {
	return &Client{
		http:   supabase.NewRESTClient(cfg),
		bucket: bucket,
		log:    logger.With("adapter", "storage", "bucket", bucket),
	}
}

// Bucket returns the bucket the client is scoped to.
func (c *Client) Bucket() string { return c.bucket }

type sortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

type listRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	SortBy sortBy `json:"sortBy"`
	Search string `json:"search,omitempty"`
}

type listItem struct {
	Name     string         `json:"name"`
	ID       *string        `json:"id"`
	Metadata map[string]any `json:"metadata"`
}

// List returns one page of the direct children of folder, sorted by name.
// A non-empty search keeps only children whose name starts with it.
func (c *Client) List(ctx context.Context, folder string, limit, offset int, search string) ([]domain.VaultEntry, error) {
	var items []listItem
	resp, err := supabase.R(c.http).
		SetContext(ctx).
		SetBody(listRequest{
			Prefix: folder,
			Limit:  limit,
			Offset: offset,
			SortBy: sortBy{Column: "name", Order: "asc"},
			Search: search,
		}).
		SetResult(&items).
		Post("/storage/v1/object/list/" + url.PathEscape(c.bucket))
	if err := supabase.Check("storage list", resp, err); err != nil {
		return nil, err
	}

	entries := make([]domain.VaultEntry, len(items))
	for i, it := range items {
		entries[i] = domain.VaultEntry{Name: it.Name, ID: it.ID, Metadata: it.Metadata}
	}
	return entries, nil
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Remove deletes the given object paths in a single call. Paths that do not
// exist are ignored by the API.
func (c *Client) Remove(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	resp, err := supabase.R(c.http).
		SetContext(ctx).
		SetBody(removeRequest{Prefixes: paths}).
		Delete("/storage/v1/object/" + url.PathEscape(c.bucket))
	if err := supabase.Check("storage remove", resp, err); err != nil {
		return err
	}

	c.log.DebugContext(ctx, "objects removed", slog.Int("count", len(paths)))
	return nil
}

type moveRequest struct {
	BucketID       string `json:"bucketId"`
	SourceKey      string `json:"sourceKey"`
	DestinationKey string `json:"destinationKey"`
}

// Move renames an object within the bucket.
func (c *Client) Move(ctx context.Context, from, to string) error {
	resp, err := supabase.R(c.http).
		SetContext(ctx).
		SetBody(moveRequest{BucketID: c.bucket, SourceKey: from, DestinationKey: to}).
		Post("/storage/v1/object/move")
	if err := supabase.Check("storage move", resp, err); err != nil {
		return err
	}

	c.log.InfoContext(ctx, "object moved", slog.String("from", from), slog.String("to", to))
	return nil
}
