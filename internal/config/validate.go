package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Supabase.JWTSecret) < 32 {
		return fmt.Errorf("supabase.jwt_secret must be at least 32 characters (got %d)", len(c.Supabase.JWTSecret))
	}

	u, err := url.Parse(c.Supabase.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("supabase.url must be an absolute URL (got %q)", c.Supabase.URL)
	}

	if strings.TrimSpace(c.Supabase.ServiceRoleKey) == "" {
		return fmt.Errorf("supabase.service_role_key is required")
	}

	if err := c.Vault.validate(); err != nil {
		return fmt.Errorf("vault: %w", err)
	}

	if c.RateLimit.DeletePerMinute <= 0 {
		return fmt.Errorf("ratelimit.delete_per_minute must be > 0 (got %d)", c.RateLimit.DeletePerMinute)
	}

	if c.Redis.Enabled() && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis.lock_ttl must be > 0 when redis is enabled")
	}

	return nil
}

func (v *VaultConfig) validate() error {
	if strings.TrimSpace(v.Bucket) == "" {
		return fmt.Errorf("bucket is required")
	}
	if v.RemoveBatchSize < 1 || v.RemoveBatchSize > 1000 {
		return fmt.Errorf("remove_batch_size must be in [1, 1000] (got %d)", v.RemoveBatchSize)
	}
	if v.CatalogPageSize < 1 {
		return fmt.Errorf("catalog_page_size must be > 0 (got %d)", v.CatalogPageSize)
	}
	if v.ListPageSize < 1 {
		return fmt.Errorf("list_page_size must be > 0 (got %d)", v.ListPageSize)
	}
	if v.MaxWalkDepth < 1 {
		return fmt.Errorf("max_walk_depth must be > 0 (got %d)", v.MaxWalkDepth)
	}
	if v.ProfileVerifyPasses < 1 || v.ProfileVerifyPasses > 10 {
		return fmt.Errorf("profile_verify_passes must be in [1, 10] (got %d)", v.ProfileVerifyPasses)
	}
	if v.ResidueSampleSize < 1 {
		return fmt.Errorf("residue_sample_size must be > 0 (got %d)", v.ResidueSampleSize)
	}
	return nil
}
