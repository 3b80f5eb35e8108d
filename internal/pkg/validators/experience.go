// Package validators contains custom validation functions registered with
// the validator engine by domain entities.
package validators

import "github.com/go-playground/validator/v10"

// Experience levels used across mentee and mentor profiles.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// ExperienceLevelValidation checks that a field holds one of the known
// experience levels.
func ExperienceLevelValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	default:
		return false
	}
}
