//go:build unit
// +build unit

package sentiment

import (
	"testing"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) feedback.Analyzer {
	t.Helper()
	analyzer, err := NewLexiconAnalyzer(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return analyzer
}

func TestScore_Positive(t *testing.T) {
	analyzer := newAnalyzer(t)

	s, err := analyzer.Score("My mentor was incredibly helpful and very encouraging.")
	require.NoError(t, err)
	assert.Equal(t, feedback.LabelPositive, s.Label)
	assert.Greater(t, s.Compound, 0.05)
	assert.Less(t, s.Compound, 1.0)
}

func TestScore_Negative(t *testing.T) {
	analyzer := newAnalyzer(t)

	s, err := analyzer.Score("The sessions were frustrating and my mentor was dismissive and rude.")
	require.NoError(t, err)
	assert.Equal(t, feedback.LabelNegative, s.Label)
	assert.Less(t, s.Compound, -0.05)
	assert.Greater(t, s.Compound, -1.0)
}

func TestScore_Neutral(t *testing.T) {
	analyzer := newAnalyzer(t)

	s, err := analyzer.Score("We met on Tuesday and reviewed the calendar.")
	require.NoError(t, err)
	assert.Equal(t, feedback.LabelNeutral, s.Label)
	assert.InDelta(t, 0, s.Compound, 0.05)
}

func TestScore_NegationFlipsValence(t *testing.T) {
	analyzer := newAnalyzer(t)

	plain, err := analyzer.Score("The pairing sessions were helpful.")
	require.NoError(t, err)
	negated, err := analyzer.Score("The pairing sessions were not helpful.")
	require.NoError(t, err)

	assert.Greater(t, plain.Compound, 0.0)
	assert.Less(t, negated.Compound, 0.0)
}

func TestScore_BoosterAmplifies(t *testing.T) {
	analyzer := newAnalyzer(t)

	plain, err := analyzer.Score("The feedback was helpful.")
	require.NoError(t, err)
	boosted, err := analyzer.Score("The feedback was extremely helpful.")
	require.NoError(t, err)

	assert.Greater(t, boosted.Compound, plain.Compound)
}

func TestScore_ExclamationEmphasis(t *testing.T) {
	analyzer := newAnalyzer(t)

	plain, err := analyzer.Score("This program is great")
	require.NoError(t, err)
	excited, err := analyzer.Score("This program is great!!!")
	require.NoError(t, err)

	assert.Greater(t, excited.Compound, plain.Compound)
}

func TestScore_EmptyText(t *testing.T) {
	analyzer := newAnalyzer(t)

	_, err := analyzer.Score("   ")
	require.Error(t, err)
}

func TestTokenize_Contractions(t *testing.T) {
	tokens := tokenize("Don't stop; it wasn't bad!")
	assert.Equal(t, []string{"dont", "stop", "it", "wasnt", "bad"}, tokens)
}
