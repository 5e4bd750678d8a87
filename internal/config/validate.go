package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Database.URI == "" {
		return fmt.Errorf("database.uri is required")
	}
	if c.Database.MaxPoolSize > 0 && c.Database.MinPoolSize > c.Database.MaxPoolSize {
		return fmt.Errorf("database.min_pool_size (%d) exceeds max_pool_size (%d)",
			c.Database.MinPoolSize, c.Database.MaxPoolSize)
	}

	if c.Reports.MaxRows <= 0 {
		return fmt.Errorf("reports.max_rows must be > 0 (got %d)", c.Reports.MaxRows)
	}

	return nil
}
