package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the envelope for request failures.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the envelope for informational replies.
type InfoResponse struct {
	Message string `json:"message"`
}

// MenteeRequest is the payload for creating or replacing a mentee profile.
type MenteeRequest struct {
	FirstName             string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName              string   `json:"last_name" validate:"required,min=1,max=100"`
	Email                 string   `json:"email" validate:"required,email"`
	City                  string   `json:"city" validate:"required,min=1,max=100"`
	State                 string   `json:"state" validate:"omitempty,max=100"`
	Country               string   `json:"country" validate:"required,min=2,max=100"`
	FormerlyIncarcerated  bool     `json:"formerly_incarcerated"`
	UnderrepresentedGroup bool     `json:"underrepresented_group"`
	LowIncome             bool     `json:"low_income"`
	Convictions           []string `json:"list_convictions" validate:"omitempty,dive,min=1,max=100"`
	Subject               string   `json:"subject" validate:"required,min=1,max=100"`
	ExperienceLevel       string   `json:"experience_level" validate:"required,experienceLevelValidation"`
	JobHelp               bool     `json:"job_help"`
	IndustryKnowledge     bool     `json:"industry_knowledge"`
	PairProgramming       bool     `json:"pair_programming"`
	OtherInfo             string   `json:"other_info" validate:"omitempty,max=2000"`
}

// Validate for validating MenteeRequest struct
func (r *MenteeRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a mentee entity. ProfileID and
// DateTimeCreated are left for the service to assign.
func (r *MenteeRequest) ToDomain() *profiles.Mentee {
	return &profiles.Mentee{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Email:                 r.Email,
		City:                  r.City,
		State:                 r.State,
		Country:               r.Country,
		FormerlyIncarcerated:  r.FormerlyIncarcerated,
		UnderrepresentedGroup: r.UnderrepresentedGroup,
		LowIncome:             r.LowIncome,
		Convictions:           r.Convictions,
		Subject:               r.Subject,
		ExperienceLevel:       r.ExperienceLevel,
		JobHelp:               r.JobHelp,
		IndustryKnowledge:     r.IndustryKnowledge,
		PairProgramming:       r.PairProgramming,
		OtherInfo:             r.OtherInfo,
	}
}

// MenteeResponse mirrors the mentee entity for JSON replies.
type MenteeResponse struct {
	ProfileID             string    `json:"profile_id"`
	DateTimeCreated       time.Time `json:"date_time_created"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Email                 string    `json:"email"`
	City                  string    `json:"city"`
	State                 string    `json:"state,omitempty"`
	Country               string    `json:"country"`
	FormerlyIncarcerated  bool      `json:"formerly_incarcerated"`
	UnderrepresentedGroup bool      `json:"underrepresented_group"`
	LowIncome             bool      `json:"low_income"`
	Convictions           []string  `json:"list_convictions,omitempty"`
	Subject               string    `json:"subject"`
	ExperienceLevel       string    `json:"experience_level"`
	JobHelp               bool      `json:"job_help"`
	IndustryKnowledge     bool      `json:"industry_knowledge"`
	PairProgramming       bool      `json:"pair_programming"`
	OtherInfo             string    `json:"other_info,omitempty"`
}

// NewMenteeResponse maps a mentee entity to its response DTO.
func NewMenteeResponse(m *profiles.Mentee) MenteeResponse {
	return MenteeResponse{
		ProfileID:             m.ProfileID,
		DateTimeCreated:       m.DateTimeCreated,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		Email:                 m.Email,
		City:                  m.City,
		State:                 m.State,
		Country:               m.Country,
		FormerlyIncarcerated:  m.FormerlyIncarcerated,
		UnderrepresentedGroup: m.UnderrepresentedGroup,
		LowIncome:             m.LowIncome,
		Convictions:           m.Convictions,
		Subject:               m.Subject,
		ExperienceLevel:       m.ExperienceLevel,
		JobHelp:               m.JobHelp,
		IndustryKnowledge:     m.IndustryKnowledge,
		PairProgramming:       m.PairProgramming,
		OtherInfo:             m.OtherInfo,
	}
}

// MentorRequest is the payload for creating or replacing a mentor profile.
type MentorRequest struct {
	FirstName         string `json:"first_name" validate:"required,min=1,max=100"`
	LastName          string `json:"last_name" validate:"required,min=1,max=100"`
	Email             string `json:"email" validate:"required,email"`
	City              string `json:"city" validate:"required,min=1,max=100"`
	State             string `json:"state" validate:"omitempty,max=100"`
	Country           string `json:"country" validate:"required,min=2,max=100"`
	CurrentCompany    string `json:"current_company" validate:"omitempty,max=200"`
	CurrentPosition   string `json:"current_position" validate:"omitempty,max=200"`
	Subject           string `json:"subject" validate:"required,min=1,max=100"`
	ExperienceLevel   string `json:"experience_level" validate:"required,experienceLevelValidation"`
	JobHelp           bool   `json:"job_help"`
	IndustryKnowledge bool   `json:"industry_knowledge"`
	PairProgramming   bool   `json:"pair_programming"`
	OtherInfo         string `json:"other_info" validate:"omitempty,max=2000"`
}

// Validate for validating MentorRequest struct
func (r *MentorRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a mentor entity.
func (r *MentorRequest) ToDomain() *profiles.Mentor {
	return &profiles.Mentor{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             r.Email,
		City:              r.City,
		State:             r.State,
		Country:           r.Country,
		CurrentCompany:    r.CurrentCompany,
		CurrentPosition:   r.CurrentPosition,
		Subject:           r.Subject,
		ExperienceLevel:   r.ExperienceLevel,
		JobHelp:           r.JobHelp,
		IndustryKnowledge: r.IndustryKnowledge,
		PairProgramming:   r.PairProgramming,
		OtherInfo:         r.OtherInfo,
	}
}

// MentorResponse mirrors the mentor entity for JSON replies.
type MentorResponse struct {
	ProfileID         string    `json:"profile_id"`
	DateTimeCreated   time.Time `json:"date_time_created"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	City              string    `json:"city"`
	State             string    `json:"state,omitempty"`
	Country           string    `json:"country"`
	CurrentCompany    string    `json:"current_company,omitempty"`
	CurrentPosition   string    `json:"current_position,omitempty"`
	Subject           string    `json:"subject"`
	ExperienceLevel   string    `json:"experience_level"`
	JobHelp           bool      `json:"job_help"`
	IndustryKnowledge bool      `json:"industry_knowledge"`
	PairProgramming   bool      `json:"pair_programming"`
	OtherInfo         string    `json:"other_info,omitempty"`
}

// NewMentorResponse maps a mentor entity to its response DTO.
func NewMentorResponse(m *profiles.Mentor) MentorResponse {
	return MentorResponse{
		ProfileID:         m.ProfileID,
		DateTimeCreated:   m.DateTimeCreated,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		City:              m.City,
		State:             m.State,
		Country:           m.Country,
		CurrentCompany:    m.CurrentCompany,
		CurrentPosition:   m.CurrentPosition,
		Subject:           m.Subject,
		ExperienceLevel:   m.ExperienceLevel,
		JobHelp:           m.JobHelp,
		IndustryKnowledge: m.IndustryKnowledge,
		PairProgramming:   m.PairProgramming,
		OtherInfo:         m.OtherInfo,
	}
}

// FeedbackRequest is the payload for submitting mentorship feedback.
type FeedbackRequest struct {
	MenteeProfileID string `json:"mentee_profile_id" validate:"required,uuid4"`
	MentorProfileID string `json:"mentor_profile_id" validate:"required,uuid4"`
	Text            string `json:"text" validate:"required,min=1,max=5000"`
}

// Validate for validating FeedbackRequest struct
func (r *FeedbackRequest) Validate() error {
	return validateRequest(r)
}

// SentimentResponse carries the stored sentiment of a feedback entry.
type SentimentResponse struct {
	Compound float64 `json:"compound"`
	Label    string  `json:"label"`
}

// FeedbackResponse mirrors the feedback entity for JSON replies.
type FeedbackResponse struct {
	ID              string            `json:"id"`
	DateTimeCreated time.Time         `json:"date_time_created"`
	MenteeProfileID string            `json:"mentee_profile_id"`
	MentorProfileID string            `json:"mentor_profile_id"`
	SubmittedBy     string            `json:"submitted_by,omitempty"`
	Text            string            `json:"text"`
	Sentiment       SentimentResponse `json:"sentiment"`
}

// NewFeedbackResponse maps a feedback entity to its response DTO.
func NewFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:              f.ID,
		DateTimeCreated: f.DateTimeCreated,
		MenteeProfileID: f.MenteeProfileID,
		MentorProfileID: f.MentorProfileID,
		SubmittedBy:     f.SubmittedBy,
		Text:            f.Text,
		Sentiment: SentimentResponse{
			Compound: f.Sentiment.Compound,
			Label:    f.Sentiment.Label,
		},
	}
}

// MatchResponse lists ranked mentor profile IDs for a mentee.
type MatchResponse struct {
	MenteeProfileID  string   `json:"mentee_profile_id"`
	Strategy         string   `json:"strategy"`
	MentorProfileIDs []string `json:"mentor_profile_ids"`
}

// AidEstimateResponse carries the financial aid likelihood for a mentee.
type AidEstimateResponse struct {
	MenteeProfileID string  `json:"mentee_profile_id"`
	Probability     float64 `json:"probability"`
}

// CollectionResponse pairs a collection name with its document count.
type CollectionResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ServiceInfoResponse reports the service name and API version.
type ServiceInfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func validateRequest(r interface{}) error {
	validate := validator.New()

	if err := validate.RegisterValidation("experienceLevelValidation", validators.ExperienceLevelValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

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
