// Package identity is a client for the identity provider's admin API.
package identity

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/adapter/supabase"
	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/domain"
)

// Client deletes identities through /auth/v1/admin.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// NewClient creates an identity admin client.
func NewClient(cfg config.SupabaseConfig, logger *slog.Logger) *Client {
	return &Client{
		http: supabase.NewRESTClient(cfg),
		log:  logger.With("adapter", "identity"),
	}
}

type deleteUserRequest struct {
	ShouldSoftDelete bool `json:"should_soft_delete"`
}

// DeleteUser removes the identity. With soft set the provider keeps a
// tombstone row instead of erasing it. An identity that no longer exists is
// reported as domain.ErrNotFound.
func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID, soft bool) error {
	resp, err := supabase.R(c.http).
		SetContext(ctx).
		SetBody(deleteUserRequest{ShouldSoftDelete: soft}).
		Delete("/auth/v1/admin/users/" + url.PathEscape(id.String()))
	if err := supabase.Check("identity delete", resp, err); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.log.WarnContext(ctx, "identity delete rejected",
				slog.String("account_id", id.String()),
				slog.Bool("soft", soft),
				slog.String("error", err.Error()),
			)
		}
		return err
	}
	return nil
}
