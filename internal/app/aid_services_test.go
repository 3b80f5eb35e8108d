//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEstimateAidProbability(t *testing.T) {
	tests := []struct {
		name     string
		mentee   profiles.Mentee
		expected float64
	}{
		{
			name:     "no indicators",
			mentee:   profiles.Mentee{ExperienceLevel: "advanced"},
			expected: 0,
		},
		{
			name:     "low income only",
			mentee:   profiles.Mentee{LowIncome: true, ExperienceLevel: "advanced"},
			expected: 0.35,
		},
		{
			name:     "intermediate experience",
			mentee:   profiles.Mentee{ExperienceLevel: "intermediate"},
			expected: 0.10,
		},
		{
			name: "all indicators",
			mentee: profiles.Mentee{
				LowIncome:            true,
				FormerlyIncarcerated: true,
				ExperienceLevel:      "beginner",
			},
			expected: 0.90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateAidProbability(&tt.mentee), 1e-9)
		})
	}
}

func TestAidService_Estimate(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	mentee := testMentee()
	mentee.LowIncome = true
	mentee.FormerlyIncarcerated = false

	menteeRepo.On("GetByProfileID", mock.Anything, mentee.ProfileID).Return(mentee, nil)

	svc, err := NewAidService(menteeRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	p, err := svc.Estimate(context.Background(), mentee.ProfileID)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, p, 1e-9) // low income + beginner
}

func TestAidService_Estimate_UnknownMentee(t *testing.T) {
	menteeRepo := new(MockMenteeRepository)
	menteeRepo.On("GetByProfileID", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc, err := NewAidService(menteeRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Estimate(context.Background(), uuid.NewString())
	require.Error(t, err)
}
