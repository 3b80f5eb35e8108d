package app

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/matching"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"
)

// matchPoolLimit caps how many mentors the pool-wide strategies rank.
const matchPoolLimit = 500

// matcherService implements the matching.Matcher interface
type matcherService struct {
	menteeRepo profiles.MenteeRepository
	mentorRepo profiles.MentorRepository
	logger     logger.Logger
}

// NewMatcherService creates a new instance of Matcher
func NewMatcherService(menteeRepo profiles.MenteeRepository, mentorRepo profiles.MentorRepository, logger logger.Logger) (matching.Matcher, error) {
	return &matcherService{
		menteeRepo: menteeRepo,
		mentorRepo: mentorRepo,
		logger:     logger,
	}, nil
}

// Match ranks mentors for the mentee named in the request and returns
// their profile IDs, best match first. Limit is a maximum: strategies
// return fewer IDs when the candidate pool is smaller.
func (s *matcherService) Match(ctx context.Context, req *matching.Request) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match request: %w", err)
	}

	if req.Strategy == matching.StrategyRandom {
		return s.matchRandom(ctx, req.Limit)
	}

	mentee, err := s.menteeRepo.GetByProfileID(ctx, req.MenteeProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentee: %w", err)
	}

	switch req.Strategy {
	case matching.StrategySort:
		return s.matchSort(ctx, mentee, req.Limit)
	case matching.StrategySearch:
		return s.matchSearch(ctx, mentee, req.Limit)
	case matching.StrategySortSearch:
		return s.matchSortSearch(ctx, mentee, req.Limit)
	default:
		return nil, fmt.Errorf("unknown match strategy: %q", req.Strategy)
	}
}

// matchSort ranks the whole mentor pool by subject then experience level
// affinity with the mentee.
func (s *matcherService) matchSort(ctx context.Context, mentee *profiles.Mentee, limit int) ([]string, error) {
	mentors, err := s.listMentorPool(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(mentors, func(i, j int) bool {
		return lessRank(sortRank(mentee, mentors[i]), sortRank(mentee, mentors[j]))
	})

	return mentorIDs(mentors, limit), nil
}

// matchSearch returns mentors in text-search relevance order for the
// mentee's subject.
func (s *matcherService) matchSearch(ctx context.Context, mentee *profiles.Mentee, limit int) ([]string, error) {
	mentors, err := s.mentorRepo.Search(ctx, mentee.Subject, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search mentors: %w", err)
	}
	return mentorIDs(mentors, limit), nil
}

// matchSortSearch text-searches by the mentee's subject and then ranks the
// hits by profile affinity. This is the production strategy.
func (s *matcherService) matchSortSearch(ctx context.Context, mentee *profiles.Mentee, limit int) ([]string, error) {
	mentors, err := s.mentorRepo.Search(ctx, mentee.Subject, matchPoolLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search mentors: %w", err)
	}

	sort.SliceStable(mentors, func(i, j int) bool {
		return lessRank(sortSearchRank(mentee, mentors[i]), sortSearchRank(mentee, mentors[j]))
	})

	return mentorIDs(mentors, limit), nil
}

// matchRandom samples the mentor pool uniformly, ignoring the mentee.
func (s *matcherService) matchRandom(ctx context.Context, limit int) ([]string, error) {
	mentors, err := s.listMentorPool(ctx)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(mentors), func(i, j int) {
		mentors[i], mentors[j] = mentors[j], mentors[i]
	})

	return mentorIDs(mentors, limit), nil
}

func (s *matcherService) listMentorPool(ctx context.Context) ([]*profiles.Mentor, error) {
	query := profiles.NewMentorQuery()
	query.Limit = matchPoolLimit

	mentors, err := s.mentorRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}

// sortRank orders mentors by (subject mismatch, experience mismatch);
// lower is better.
func sortRank(mentee *profiles.Mentee, mentor *profiles.Mentor) []int {
	return []int{
		boolToInt(mentee.Subject != mentor.Subject),
		boolToInt(mentee.ExperienceLevel != mentor.ExperienceLevel),
	}
}

// sortSearchRank extends sortRank with pair programming affinity; mentors
// without industry knowledge rank first among otherwise equal candidates.
func sortSearchRank(mentee *profiles.Mentee, mentor *profiles.Mentor) []int {
	return []int{
		boolToInt(mentee.Subject != mentor.Subject),
		boolToInt(mentee.ExperienceLevel != mentor.ExperienceLevel),
		boolToInt(mentee.PairProgramming != mentor.PairProgramming),
		boolToInt(mentor.IndustryKnowledge),
	}
}

func lessRank(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func mentorIDs(mentors []*profiles.Mentor, limit int) []string {
	if limit > len(mentors) {
		limit = len(mentors)
	}
	ids := make([]string, limit)
	for i := 0; i < limit; i++ {
		ids[i] = mentors[i].ProfileID
	}
	return ids
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
