package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"github.com/google/uuid"
)

// feedbackService implements the feedback.Service interface
type feedbackService struct {
	feedbackRepo feedback.Repository
	menteeRepo   profiles.MenteeRepository
	mentorRepo   profiles.MentorRepository
	analyzer     feedback.Analyzer
	logger       logger.Logger
}

// NewFeedbackService creates a new instance of feedback.Service
func NewFeedbackService(
	feedbackRepo feedback.Repository,
	menteeRepo profiles.MenteeRepository,
	mentorRepo profiles.MentorRepository,
	analyzer feedback.Analyzer,
	logger logger.Logger,
) (feedback.Service, error) {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		menteeRepo:   menteeRepo,
		mentorRepo:   mentorRepo,
		analyzer:     analyzer,
		logger:       logger,
	}, nil
}

// Submit verifies both profiles exist, scores the text for sentiment and
// persists the entry.
func (s *feedbackService) Submit(ctx context.Context, menteeProfileID, mentorProfileID, submittedBy, text string) (*feedback.Feedback, error) {
	if _, err := s.menteeRepo.GetByProfileID(ctx, menteeProfileID); err != nil {
		return nil, fmt.Errorf("failed to load mentee: %w", err)
	}
	if _, err := s.mentorRepo.GetByProfileID(ctx, mentorProfileID); err != nil {
		return nil, fmt.Errorf("failed to load mentor: %w", err)
	}

	sentiment, err := s.analyzer.Score(text)
	if err != nil {
		return nil, fmt.Errorf("failed to score feedback text: %w", err)
	}

	fb := &feedback.Feedback{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		MenteeProfileID: menteeProfileID,
		MentorProfileID: mentorProfileID,
		SubmittedBy:     submittedBy,
		Text:            text,
		Sentiment:       sentiment,
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	s.logger.Info("Stored feedback ", fb.ID, " with sentiment ", fb.Sentiment.Label)
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context, query *feedback.Query) ([]*feedback.Feedback, error) {
	return s.feedbackRepo.List(ctx, query)
}

func (s *feedbackService) GetByID(ctx context.Context, id string) (*feedback.Feedback, error) {
	return s.feedbackRepo.GetByID(ctx, id)
}

func (s *feedbackService) DeleteByID(ctx context.Context, id string) error {
	return s.feedbackRepo.DeleteByID(ctx, id)
}
