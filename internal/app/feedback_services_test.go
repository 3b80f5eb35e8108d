//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_Submit(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	mentorRepo := new(MockMentorRepository)
	feedbackRepo := new(MockFeedbackRepository)
	analyzer := new(MockAnalyzer)

	mentee := testMentee()
	mentor := testMentor(mentee.Subject, "advanced", true, false)

	menteeRepo.On("GetByProfileID", mock.Anything, mentee.ProfileID).Return(mentee, nil)
	mentorRepo.On("GetByProfileID", mock.Anything, mentor.ProfileID).Return(mentor, nil)
	analyzer.On("Score", "My mentor was great").
		Return(feedback.Sentiment{Compound: 0.6, Label: feedback.LabelPositive}, nil)
	feedbackRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewFeedbackService(feedbackRepo, menteeRepo, mentorRepo, analyzer, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	fb, err := svc.Submit(context.Background(), mentee.ProfileID, mentor.ProfileID, "staff@underdogdevs.org", "My mentor was great")
	require.NoError(t, err)

	assert.NotEmpty(t, fb.ID)
	assert.False(t, fb.DateTimeCreated.IsZero())
	assert.Equal(t, feedback.LabelPositive, fb.Sentiment.Label)
	assert.Equal(t, "staff@underdogdevs.org", fb.SubmittedBy)
	feedbackRepo.AssertExpectations(t)
}

func TestFeedbackService_Submit_UnknownMentor(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	mentorRepo := new(MockMentorRepository)
	mentee := testMentee()

	menteeRepo.On("GetByProfileID", mock.Anything, mentee.ProfileID).Return(mentee, nil)
	mentorRepo.On("GetByProfileID", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc, err := NewFeedbackService(new(MockFeedbackRepository), menteeRepo, mentorRepo, new(MockAnalyzer), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), mentee.ProfileID, "missing", "", "text")
	require.Error(t, err)
}

func TestFeedbackService_Submit_EmptyTextRejectedByAnalyzer(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	mentorRepo := new(MockMentorRepository)
	analyzer := new(MockAnalyzer)

	mentee := testMentee()
	mentor := testMentor(mentee.Subject, "advanced", true, false)

	menteeRepo.On("GetByProfileID", mock.Anything, mentee.ProfileID).Return(mentee, nil)
	mentorRepo.On("GetByProfileID", mock.Anything, mentor.ProfileID).Return(mentor, nil)
	analyzer.On("Score", "").Return(feedback.Sentiment{}, assert.AnError)

	svc, err := NewFeedbackService(new(MockFeedbackRepository), menteeRepo, mentorRepo, analyzer, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), mentee.ProfileID, mentor.ProfileID, "", "")
	require.Error(t, err)
}
