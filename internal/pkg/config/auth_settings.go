package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the bearer token settings for write endpoints.
// When Enabled is false the API accepts unauthenticated requests.
type AuthSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Secret  string `mapstructure:"secret"`
	Issuer  string `mapstructure:"issuer"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.Enabled {
		if len(s.Secret) < 32 {
			return fmt.Errorf("auth secret must be at least 32 bytes when auth is enabled")
		}
	}

	return nil
}
