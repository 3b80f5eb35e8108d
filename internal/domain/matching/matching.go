// Package matching defines the contract for pairing mentees with mentors.
package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Strategy selects the ranking algorithm used for a match request.
type Strategy string

// Known matching strategies. SortSearch is the production default: a text
// search on the mentee's subject followed by a stable rank over profile
// affinity. Sort ranks the whole mentor pool, Search returns raw relevance
// order, Random samples the pool ignoring the mentee.
const (
	StrategySortSearch Strategy = "sortsearch"
	StrategySort       Strategy = "sort"
	StrategySearch     Strategy = "search"
	StrategyRandom     Strategy = "random"
)

// ParseStrategy maps a string to a Strategy, defaulting to SortSearch
// for the empty string.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategySortSearch, nil
	case StrategySortSearch, StrategySort, StrategySearch, StrategyRandom:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown match strategy: %q", s)
	}
}

// Request describes a single match query. Limit is a maximum, not a
// guaranteed count.
type Request struct {
	MenteeProfileID string   `validate:"required,uuid4"`
	Limit           int      `validate:"required,min=1,max=100"`
	Strategy        Strategy `validate:"required,oneof=sortsearch sort search random"`
}

// Validate for validating Request struct
func (r *Request) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// Matcher ranks mentors for a mentee and returns their profile IDs,
// best match first.
type Matcher interface {
	Match(ctx context.Context, req *Request) ([]string, error)
}
