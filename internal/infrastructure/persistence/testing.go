//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/config"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB           *mongo.Database
	Logger       logger.Logger
	MenteeRepo   profiles.MenteeRepository
	MentorRepo   profiles.MentorRepository
	FeedbackRepo feedback.Repository
}

// SetupTestDB connects to a local MongoDB, creates a uniquely named test
// database and registers cleanup that drops it.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	settings := config.DatabaseSettings{
		URI:                   "mongodb://localhost:27017",
		Name:                  uniqueDBName,
		ConnectTimeoutSeconds: 5,
	}

	ctx := context.Background()
	db, err := NewMongoConnection(ctx, settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		dropCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(dropCtx)
		_ = CloseMongoConnection(dropCtx, db)
	})

	log := testutil.SetupTestLogger(t)

	menteeRepo, err := NewMongoMenteeRepository(ctx, db, log)
	require.NoError(t, err, "Failed to create mentee repository")

	mentorRepo, err := NewMongoMentorRepository(ctx, db, log)
	require.NoError(t, err, "Failed to create mentor repository")

	feedbackRepo, err := NewMongoFeedbackRepository(ctx, db, log)
	require.NoError(t, err, "Failed to create feedback repository")

	return &TestContext{
		DB:           db,
		Logger:       log,
		MenteeRepo:   menteeRepo,
		MentorRepo:   mentorRepo,
		FeedbackRepo: feedbackRepo,
	}
}

// CreateTestMentee builds a valid mentee with default values.
func CreateTestMentee(t *testing.T) *profiles.Mentee {
	t.Helper()

	return &profiles.Mentee{
		ProfileID:            uuid.NewString(),
		DateTimeCreated:      time.Now().UTC().Truncate(time.Millisecond),
		FirstName:            "Luca",
		LastName:             "Evans",
		Email:                "luca.evans@example.com",
		City:                 "Ashland",
		State:                "Oregon",
		Country:              "USA",
		FormerlyIncarcerated: true,
		LowIncome:            true,
		Convictions:          []string{"Infraction"},
		Subject:              "Web: HTML, CSS, JavaScript",
		ExperienceLevel:      "beginner",
		PairProgramming:      true,
	}
}

// CreateTestMentor builds a valid mentor with default values.
func CreateTestMentor(t *testing.T, subject, experienceLevel string) *profiles.Mentor {
	t.Helper()

	return &profiles.Mentor{
		ProfileID:         uuid.NewString(),
		DateTimeCreated:   time.Now().UTC().Truncate(time.Millisecond),
		FirstName:         "Dana",
		LastName:          "Whitfield",
		Email:             "dana@example.com",
		City:              "Austin",
		State:             "Texas",
		Country:           "USA",
		Subject:           subject,
		ExperienceLevel:   experienceLevel,
		IndustryKnowledge: true,
		PairProgramming:   true,
	}
}
