package app

import (
	"context"
	"fmt"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/validators"
)

// Financial aid likelihood weights.
const (
	aidWeightLowIncome            = 0.35
	aidWeightFormerlyIncarcerated = 0.35
	aidWeightBeginner             = 0.20
	aidWeightIntermediate         = 0.10
)

// aidService implements the profiles.AidEstimationService interface
type aidService struct {
	menteeRepo profiles.MenteeRepository
	logger     logger.Logger
}

// NewAidService creates a new instance of AidEstimationService
func NewAidService(menteeRepo profiles.MenteeRepository, logger logger.Logger) (profiles.AidEstimationService, error) {
	return &aidService{
		menteeRepo: menteeRepo,
		logger:     logger,
	}, nil
}

// Estimate returns the probability in [0, 1] that the mentee will need
// financial aid, derived from income, incarceration history and
// experience level.
func (s *aidService) Estimate(ctx context.Context, menteeProfileID string) (float64, error) {
	mentee, err := s.menteeRepo.GetByProfileID(ctx, menteeProfileID)
	if err != nil {
		return 0, fmt.Errorf("failed to load mentee: %w", err)
	}

	return EstimateAidProbability(mentee), nil
}

// EstimateAidProbability computes the aid likelihood for a mentee.
func EstimateAidProbability(mentee *profiles.Mentee) float64 {
	var p float64

	if mentee.LowIncome {
		p += aidWeightLowIncome
	}
	if mentee.FormerlyIncarcerated {
		p += aidWeightFormerlyIncarcerated
	}

	switch mentee.ExperienceLevel {
	case validators.ExperienceBeginner:
		p += aidWeightBeginner
	case validators.ExperienceIntermediate:
		p += aidWeightIntermediate
	}

	if p > 1 {
		p = 1
	}
	return p
}
