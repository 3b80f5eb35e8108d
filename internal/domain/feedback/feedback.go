// Package feedback holds the mentorship feedback entity and the sentiment
// scoring contract.
package feedback

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Sentiment labels.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Label thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Sentiment is the stored result of scoring a feedback text. Compound is
// a normalized valence in (-1, 1).
type Sentiment struct {
	Compound float64 `validate:"gte=-1,lte=1"`
	Label    string  `validate:"required,oneof=positive neutral negative"`
}

// LabelFor maps a compound score to its sentiment label.
func LabelFor(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return LabelPositive
	case compound <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Feedback entity. Sentiment is computed once at submission time and
// persisted with the document.
type Feedback struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	MenteeProfileID string    `validate:"required,uuid4"`
	MentorProfileID string    `validate:"required,uuid4"`
	SubmittedBy     string    `validate:"omitempty,max=255"`
	Text            string    `validate:"required,min=1,max=5000"`
	Sentiment       Sentiment
}

// Validate for validating Feedback struct
func (f *Feedback) Validate() error {
	validate := validator.New()

	err := validate.Struct(f)
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

// Query carries optional filters and pagination for feedback listings.
type Query struct {
	MenteeProfileID string `validate:"omitempty,uuid4"`
	MentorProfileID string `validate:"omitempty,uuid4"`
	Label           string `validate:"omitempty,oneof=positive neutral negative"`
	Limit           int    `validate:"omitempty,min=1,max=500"`
	Offset          int    `validate:"omitempty,min=0"`
}

// NewQuery returns a Query with default pagination.
func NewQuery() *Query {
	return &Query{Limit: 100}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid query parameters: %w", err)
	}

	return nil
}
