package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds the MongoDB connection settings.
type DatabaseSettings struct {
	URI                   string `mapstructure:"uri" validate:"required"`
	Name                  string `mapstructure:"name" validate:"required,min=1,max=64"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds" validate:"omitempty,min=1,max=120"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
