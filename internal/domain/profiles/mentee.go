package profiles

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Mentee entity
type Mentee struct {
	ProfileID             string    `validate:"required,uuid4"`
	DateTimeCreated       time.Time `validate:"required"`
	FirstName             string    `validate:"required,min=1,max=100"`
	LastName              string    `validate:"required,min=1,max=100"`
	Email                 string    `validate:"required,email"`
	City                  string    `validate:"required,min=1,max=100"`
	State                 string    `validate:"omitempty,max=100"`
	Country               string    `validate:"required,min=2,max=100"`
	FormerlyIncarcerated  bool
	UnderrepresentedGroup bool
	LowIncome             bool
	Convictions           []string `validate:"omitempty,dive,min=1,max=100"`
	Subject               string   `validate:"required,min=1,max=100"`
	ExperienceLevel       string   `validate:"required,experienceLevelValidation"`
	JobHelp               bool
	IndustryKnowledge     bool
	PairProgramming       bool
	OtherInfo             string `validate:"omitempty,max=2000"`
}

// Validate for validating Mentee struct
func (m *Mentee) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("experienceLevelValidation", validators.ExperienceLevelValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
