//go:build unit
// +build unit

package feedback

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFor(t *testing.T) {
	assert.Equal(t, LabelPositive, LabelFor(0.8))
	assert.Equal(t, LabelPositive, LabelFor(0.05))
	assert.Equal(t, LabelNeutral, LabelFor(0.049))
	assert.Equal(t, LabelNeutral, LabelFor(0))
	assert.Equal(t, LabelNeutral, LabelFor(-0.049))
	assert.Equal(t, LabelNegative, LabelFor(-0.05))
	assert.Equal(t, LabelNegative, LabelFor(-0.9))
}

func TestFeedbackValidate(t *testing.T) {
	fb := &Feedback{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		MenteeProfileID: uuid.NewString(),
		MentorProfileID: uuid.NewString(),
		Text:            "My mentor has been incredibly helpful.",
		Sentiment:       Sentiment{Compound: 0.7, Label: LabelPositive},
	}
	require.NoError(t, fb.Validate())

	fb.Text = ""
	require.Error(t, fb.Validate())

	fb.Text = "ok"
	fb.Sentiment.Label = "ambivalent"
	require.Error(t, fb.Validate())
}

func TestQueryValidate(t *testing.T) {
	q := NewQuery()
	require.NoError(t, q.Validate())

	q.MenteeProfileID = uuid.NewString()
	q.Label = LabelNegative
	require.NoError(t, q.Validate())

	q.Label = "angry"
	require.Error(t, q.Validate())

	q = NewQuery()
	q.MentorProfileID = "mentor-1"
	require.Error(t, q.Validate())
}
