//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenteeRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	mentee := CreateTestMentee(t)
	require.NoError(t, tc.MenteeRepo.Create(ctx, mentee))

	fetched, err := tc.MenteeRepo.GetByProfileID(ctx, mentee.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, mentee.ProfileID, fetched.ProfileID)
	assert.Equal(t, mentee.Subject, fetched.Subject)
	assert.Equal(t, mentee.Convictions, fetched.Convictions)
}

func TestMenteeRepository_Create_InvalidEntity(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	mentee := CreateTestMentee(t)
	mentee.Email = "nope"
	require.Error(t, tc.MenteeRepo.Create(ctx, mentee))
}

func TestMenteeRepository_GetByProfileID_NotFound(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	_, err := tc.MenteeRepo.GetByProfileID(ctx, uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenteeRepository_List_Filters(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	a := CreateTestMentee(t)
	a.Subject = "Web: HTML, CSS, JavaScript"
	b := CreateTestMentee(t)
	b.Subject = "Data Science: Python"
	b.LowIncome = false

	require.NoError(t, tc.MenteeRepo.Create(ctx, a))
	require.NoError(t, tc.MenteeRepo.Create(ctx, b))

	all, err := tc.MenteeRepo.List(ctx, profiles.NewMenteeQuery())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	query := profiles.NewMenteeQuery()
	query.Subject = "Data Science: Python"
	filtered, err := tc.MenteeRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, b.ProfileID, filtered[0].ProfileID)

	lowIncome := true
	query = profiles.NewMenteeQuery()
	query.LowIncome = &lowIncome
	filtered, err = tc.MenteeRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, a.ProfileID, filtered[0].ProfileID)
}

func TestMenteeRepository_UpdateByProfileID(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	mentee := CreateTestMentee(t)
	require.NoError(t, tc.MenteeRepo.Create(ctx, mentee))

	mentee.City = "Portland"
	require.NoError(t, tc.MenteeRepo.UpdateByProfileID(ctx, mentee))

	fetched, err := tc.MenteeRepo.GetByProfileID(ctx, mentee.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, "Portland", fetched.City)

	ghost := CreateTestMentee(t)
	err = tc.MenteeRepo.UpdateByProfileID(ctx, ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenteeRepository_DeleteByProfileID(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	mentee := CreateTestMentee(t)
	require.NoError(t, tc.MenteeRepo.Create(ctx, mentee))
	require.NoError(t, tc.MenteeRepo.DeleteByProfileID(ctx, mentee.ProfileID))

	_, err := tc.MenteeRepo.GetByProfileID(ctx, mentee.ProfileID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = tc.MenteeRepo.DeleteByProfileID(ctx, mentee.ProfileID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMentorRepository_Search_RelevanceOrder(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	web := CreateTestMentor(t, "Web: HTML, CSS, JavaScript", "beginner")
	data := CreateTestMentor(t, "Data Science: Python", "advanced")
	require.NoError(t, tc.MentorRepo.Create(ctx, web))
	require.NoError(t, tc.MentorRepo.Create(ctx, data))

	results, err := tc.MentorRepo.Search(ctx, "JavaScript", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, web.ProfileID, results[0].ProfileID)

	_, err = tc.MentorRepo.Search(ctx, "", 10)
	require.Error(t, err)
}

func TestInfoService_Collections(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, tc.MenteeRepo.Create(ctx, CreateTestMentee(t)))
	require.NoError(t, tc.MentorRepo.Create(ctx, CreateTestMentor(t, "Android: Java", "advanced")))

	infoService, err := NewMongoInfoService(tc.DB, tc.Logger)
	require.NoError(t, err)

	collections, err := infoService.Collections(ctx)
	require.NoError(t, err)

	counts := make(map[string]int64)
	for _, collection := range collections {
		counts[collection.Name] = collection.Count
	}
	assert.Equal(t, int64(1), counts["Mentees"])
	assert.Equal(t, int64(1), counts["Mentors"])
}
