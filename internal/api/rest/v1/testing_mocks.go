//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/matching"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/system"

	"github.com/stretchr/testify/mock"
)

// MockMenteeService is a mock implementation of profiles.MenteeService
type MockMenteeService struct {
	mock.Mock
}

func (m *MockMenteeService) Register(ctx context.Context, mentee *profiles.Mentee) (*profiles.Mentee, error) {
	args := m.Called(ctx, mentee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Mentee), args.Error(1)
}

func (m *MockMenteeService) List(ctx context.Context, query *profiles.MenteeQuery) ([]*profiles.Mentee, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentee), args.Error(1)
}

func (m *MockMenteeService) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentee, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Mentee), args.Error(1)
}

func (m *MockMenteeService) UpdateByProfileID(ctx context.Context, mentee *profiles.Mentee) error {
	args := m.Called(ctx, mentee)
	return args.Error(0)
}

func (m *MockMenteeService) DeleteByProfileID(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockMenteeService) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentee, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentee), args.Error(1)
}

// MockMentorService is a mock implementation of profiles.MentorService
type MockMentorService struct {
	mock.Mock
}

func (m *MockMentorService) Register(ctx context.Context, mentor *profiles.Mentor) (*profiles.Mentor, error) {
	args := m.Called(ctx, mentor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Mentor), args.Error(1)
}

func (m *MockMentorService) List(ctx context.Context, query *profiles.MentorQuery) ([]*profiles.Mentor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentor), args.Error(1)
}

func (m *MockMentorService) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentor, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Mentor), args.Error(1)
}

func (m *MockMentorService) UpdateByProfileID(ctx context.Context, mentor *profiles.Mentor) error {
	args := m.Called(ctx, mentor)
	return args.Error(0)
}

func (m *MockMentorService) DeleteByProfileID(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockMentorService) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentor, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Mentor), args.Error(1)
}

// MockMatcher is a mock implementation of matching.Matcher
type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) Match(ctx context.Context, req *matching.Request) ([]string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockAidEstimationService is a mock implementation of profiles.AidEstimationService
type MockAidEstimationService struct {
	mock.Mock
}

func (m *MockAidEstimationService) Estimate(ctx context.Context, menteeProfileID string) (float64, error) {
	args := m.Called(ctx, menteeProfileID)
	return args.Get(0).(float64), args.Error(1)
}

// MockFeedbackService is a mock implementation of feedback.Service
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, menteeProfileID, mentorProfileID, submittedBy, text string) (*feedback.Feedback, error) {
	args := m.Called(ctx, menteeProfileID, mentorProfileID, submittedBy, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackService) List(ctx context.Context, query *feedback.Query) ([]*feedback.Feedback, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackService) GetByID(ctx context.Context, id string) (*feedback.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInfoService is a mock implementation of system.InfoService
type MockInfoService struct {
	mock.Mock
}

func (m *MockInfoService) Collections(ctx context.Context) ([]system.CollectionCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]system.CollectionCount), args.Error(1)
}
