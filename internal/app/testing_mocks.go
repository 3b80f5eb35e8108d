//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"

	"github.com/stretchr/testify/mock"
)

// MockMenteeRepository is a mock implementation of profiles.MenteeRepository
type MockMenteeRepository struct {
	mock.Mock
}

func (m *MockMenteeRepository) Create(ctx context.Context, mentee *profiles.Mentee) error {
	args := m.Called(ctx, mentee)
	return args.Error(0)
}

func (m *MockMenteeRepository) List(ctx context.Context, query *profiles.MenteeQuery) ([]*profiles.Mentee, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentee, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) UpdateByProfileID(ctx context.Context, mentee *profiles.Mentee) error {
	args := m.Called(ctx, mentee)
	return args.Error(0)
}

func (m *MockMenteeRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockMenteeRepository) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentee, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentee), args.Error(1)
}

func (m *MockMenteeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMentorRepository is a mock implementation of profiles.MentorRepository
type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) Create(ctx context.Context, mentor *profiles.Mentor) error {
	args := m.Called(ctx, mentor)
	return args.Error(0)
}

func (m *MockMentorRepository) List(ctx context.Context, query *profiles.MentorQuery) ([]*profiles.Mentor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentor), args.Error(1)
}

func (m *MockMentorRepository) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentor, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Mentor), args.Error(1)
}

func (m *MockMentorRepository) UpdateByProfileID(ctx context.Context, mentor *profiles.Mentor) error {
	args := m.Called(ctx, mentor)
	return args.Error(0)
}

func (m *MockMentorRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockMentorRepository) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentor, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentor), args.Error(1)
}

func (m *MockMentorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFeedbackRepository is a mock implementation of feedback.Repository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, fb *feedback.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackRepository) List(ctx context.Context, query *feedback.Query) ([]*feedback.Feedback, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) GetByID(ctx context.Context, id string) (*feedback.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFeedbackRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAnalyzer is a mock implementation of feedback.Analyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Score(text string) (feedback.Sentiment, error) {
	args := m.Called(text)
	return args.Get(0).(feedback.Sentiment), args.Error(1)
}
