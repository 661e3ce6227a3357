// Package classify turns free text into a sentiment score/label and a
// set of topical tags. Both are plain lexicon lookups, not learned
// models, so the output is deterministic for a given input.
package classify

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

const (
	LabelVeryPositive = "very positive"
	LabelPositive     = "positive"
	LabelNeutral      = "neutral"
	LabelNegative     = "negative"
	LabelVeryNegative = "very negative"
)

// Sentiment scores text polarity in [-1, 1] and labels it.
// Empty or degenerate text scores 0 / neutral.
func Sentiment(text string) (float64, string) {
	if strings.TrimSpace(text) == "" {
		return 0, LabelNeutral
	}
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed).Compound
	return score, Label(score)
}

// Label maps a polarity score onto the closed five-way label set.
// The thresholds are checked in priority order; boundaries fall through
// to the weaker label (0.5 is "positive", 0.2 is "neutral").
func Label(score float64) string {
	switch {
	case score > 0.5:
		return LabelVeryPositive
	case score > 0.2:
		return LabelPositive
	case score < -0.5:
		return LabelVeryNegative
	case score < -0.2:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
