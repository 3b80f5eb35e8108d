package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"github.com/google/uuid"
)

const defaultSearchLimit = 10

// menteeService implements the profiles.MenteeService interface
type menteeService struct {
	menteeRepo profiles.MenteeRepository
	logger     logger.Logger
}

// NewMenteeService creates a new instance of MenteeService
func NewMenteeService(menteeRepo profiles.MenteeRepository, logger logger.Logger) (profiles.MenteeService, error) {
	return &menteeService{
		menteeRepo: menteeRepo,
		logger:     logger,
	}, nil
}

// Register assigns a profile ID and creation timestamp, validates the
// entity and persists it.
func (s *menteeService) Register(ctx context.Context, mentee *profiles.Mentee) (*profiles.Mentee, error) {
	if mentee.ProfileID == "" {
		mentee.ProfileID = uuid.New().String()
	}
	if mentee.DateTimeCreated.IsZero() {
		mentee.DateTimeCreated = time.Now().UTC()
	}

	if err := mentee.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mentee profile: %w", err)
	}

	if err := s.menteeRepo.Create(ctx, mentee); err != nil {
		return nil, fmt.Errorf("failed to register mentee: %w", err)
	}

	s.logger.Info("Registered mentee with profile id ", mentee.ProfileID)
	return mentee, nil
}

func (s *menteeService) List(ctx context.Context, query *profiles.MenteeQuery) ([]*profiles.Mentee, error) {
	return s.menteeRepo.List(ctx, query)
}

func (s *menteeService) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentee, error) {
	return s.menteeRepo.GetByProfileID(ctx, profileID)
}

func (s *menteeService) UpdateByProfileID(ctx context.Context, mentee *profiles.Mentee) error {
	if err := mentee.Validate(); err != nil {
		return fmt.Errorf("invalid mentee profile: %w", err)
	}
	return s.menteeRepo.UpdateByProfileID(ctx, mentee)
}

func (s *menteeService) DeleteByProfileID(ctx context.Context, profileID string) error {
	return s.menteeRepo.DeleteByProfileID(ctx, profileID)
}

func (s *menteeService) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentee, error) {
	if term == "" {
		return nil, fmt.Errorf("search term must not be empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.menteeRepo.Search(ctx, term, limit)
}

// mentorService implements the profiles.MentorService interface
type mentorService struct {
	mentorRepo profiles.MentorRepository
	logger     logger.Logger
}

// NewMentorService creates a new instance of MentorService
func NewMentorService(mentorRepo profiles.MentorRepository, logger logger.Logger) (profiles.MentorService, error) {
	return &mentorService{
		mentorRepo: mentorRepo,
		logger:     logger,
	}, nil
}

// Register assigns a profile ID and creation timestamp, validates the
// entity and persists it.
func (s *mentorService) Register(ctx context.Context, mentor *profiles.Mentor) (*profiles.Mentor, error) {
	if mentor.ProfileID == "" {
		mentor.ProfileID = uuid.New().String()
	}
	if mentor.DateTimeCreated.IsZero() {
		mentor.DateTimeCreated = time.Now().UTC()
	}

	if err := mentor.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mentor profile: %w", err)
	}

	if err := s.mentorRepo.Create(ctx, mentor); err != nil {
		return nil, fmt.Errorf("failed to register mentor: %w", err)
	}

	s.logger.Info("Registered mentor with profile id ", mentor.ProfileID)
	return mentor, nil
}

func (s *mentorService) List(ctx context.Context, query *profiles.MentorQuery) ([]*profiles.Mentor, error) {
	return s.mentorRepo.List(ctx, query)
}

func (s *mentorService) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentor, error) {
	return s.mentorRepo.GetByProfileID(ctx, profileID)
}

func (s *mentorService) UpdateByProfileID(ctx context.Context, mentor *profiles.Mentor) error {
	if err := mentor.Validate(); err != nil {
		return fmt.Errorf("invalid mentor profile: %w", err)
	}
	return s.mentorRepo.UpdateByProfileID(ctx, mentor)
}

func (s *mentorService) DeleteByProfileID(ctx context.Context, profileID string) error {
	return s.mentorRepo.DeleteByProfileID(ctx, profileID)
}

func (s *mentorService) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentor, error) {
	if term == "" {
		return nil, fmt.Errorf("search term must not be empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.mentorRepo.Search(ctx, term, limit)
}
