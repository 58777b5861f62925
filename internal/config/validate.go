package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns))
	}

	if err := c.Catalog.validate(); err != nil {
		errs = append(errs, fmt.Errorf("catalog: %w", err))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
			errs = append(errs, errors.New("rate_limit: requests_per_minute and auth_per_minute must be > 0"))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst))
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (c *CatalogConfig) validate() error {
	if c.DefaultPageSize <= 0 || c.DefaultPageSize > 100 {
		return fmt.Errorf("default_page_size must be between 1 and 100 (got %d)", c.DefaultPageSize)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", c.MaxUploadBytes)
	}
	if c.MaxUploadRows <= 0 {
		return fmt.Errorf("max_upload_rows must be > 0 (got %d)", c.MaxUploadRows)
	}
	return nil
}
