// Package sentiment implements the feedback.Analyzer contract with a
// VADER-style valence lexicon: known words carry a signed intensity,
// nearby negations flip it, boosters amplify or dampen it, and the summed
// valence is normalized to a compound score in (-1, 1).
package sentiment

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"
)

const (
	// negationScalar matches VADER's N_SCALAR.
	negationScalar = -0.74
	// exclamationBoost per trailing '!', capped at 4.
	exclamationBoost = 0.292
	// normalizationAlpha matches VADER's normalization constant.
	normalizationAlpha = 15.0
	// contextWindow is how many preceding tokens are checked for
	// negations and boosters.
	contextWindow = 3
)

type lexiconAnalyzer struct {
	logger logger.Logger
}

// NewLexiconAnalyzer creates the lexicon-based sentiment analyzer.
func NewLexiconAnalyzer(logger logger.Logger) (feedback.Analyzer, error) {
	return &lexiconAnalyzer{logger: logger}, nil
}

// Score computes the sentiment of text. The compound score is
// sum / sqrt(sum^2 + alpha), so it saturates toward -1 and 1.
func (a *lexiconAnalyzer) Score(text string) (feedback.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return feedback.Sentiment{}, fmt.Errorf("cannot score empty text")
	}

	tokens := tokenize(text)

	var sum float64
	for i, token := range tokens {
		valence, ok := lexicon[token]
		if !ok {
			continue
		}

		// Walk back through the context window for modifiers.
		for j := i - 1; j >= 0 && j >= i-contextWindow; j-- {
			prev := tokens[j]
			if negations[prev] {
				valence *= negationScalar
				break
			}
			if boost, ok := boosters[prev]; ok {
				if valence < 0 {
					boost = -boost
				}
				// Modifiers further away contribute less.
				distance := i - j
				valence += boost * (1 - 0.05*float64(distance-1))
			}
		}

		sum += valence
	}

	if sum != 0 {
		emphasis := exclamationEmphasis(text)
		if sum > 0 {
			sum += emphasis
		} else {
			sum -= emphasis
		}
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)

	return feedback.Sentiment{
		Compound: compound,
		Label:    feedback.LabelFor(compound),
	}, nil
}

// tokenize lowercases the text and splits it into letter runs, dropping
// apostrophes so contractions line up with the lexicon ("don't" -> "dont").
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\'' || r == '’':
			return -1
		case unicode.IsLetter(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, text)

	return strings.Fields(cleaned)
}

func exclamationEmphasis(text string) float64 {
	count := strings.Count(text, "!")
	if count > 4 {
		count = 4
	}
	return float64(count) * exclamationBoost
}
