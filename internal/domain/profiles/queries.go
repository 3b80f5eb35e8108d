package profiles

import (
	"fmt"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Sort order constants for list queries.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// MenteeQuery carries optional exact-match filters, pagination and sorting
// for mentee listings. Zero values mean "not set".
type MenteeQuery struct {
	Subject              string `validate:"omitempty,max=100"`
	ExperienceLevel      string `validate:"omitempty,experienceLevelValidation"`
	City                 string `validate:"omitempty,max=100"`
	State                string `validate:"omitempty,max=100"`
	FormerlyIncarcerated *bool
	LowIncome            *bool
	Limit                int    `validate:"omitempty,min=1,max=500"`
	Offset               int    `validate:"omitempty,min=0"`
	SortBy               string `validate:"omitempty,oneof=first_name last_name city subject experience_level date_time_created"`
	SortOrder            string `validate:"omitempty,oneof=asc desc"`
}

// NewMenteeQuery returns a MenteeQuery with default pagination.
func NewMenteeQuery() *MenteeQuery {
	return &MenteeQuery{
		Limit:     100,
		SortOrder: SortOrderAsc,
	}
}

// Validate for validating MenteeQuery struct
func (q *MenteeQuery) Validate() error {
	return validateQuery(q)
}

// MentorQuery carries optional exact-match filters, pagination and sorting
// for mentor listings.
type MentorQuery struct {
	Subject         string `validate:"omitempty,max=100"`
	ExperienceLevel string `validate:"omitempty,experienceLevelValidation"`
	City            string `validate:"omitempty,max=100"`
	State           string `validate:"omitempty,max=100"`
	PairProgramming *bool
	Limit           int    `validate:"omitempty,min=1,max=500"`
	Offset          int    `validate:"omitempty,min=0"`
	SortBy          string `validate:"omitempty,oneof=first_name last_name city subject experience_level date_time_created"`
	SortOrder       string `validate:"omitempty,oneof=asc desc"`
}

// NewMentorQuery returns a MentorQuery with default pagination.
func NewMentorQuery() *MentorQuery {
	return &MentorQuery{
		Limit:     100,
		SortOrder: SortOrderAsc,
	}
}

// Validate for validating MentorQuery struct
func (q *MentorQuery) Validate() error {
	return validateQuery(q)
}

func validateQuery(q interface{}) error {
	validate := validator.New()

	if err := validate.RegisterValidation("experienceLevelValidation", validators.ExperienceLevelValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid query parameters: %w", err)
	}

	return nil
}
