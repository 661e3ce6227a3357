package classify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelBoundaries(t *testing.T) {
	testCases := []struct {
		score    float64
		expected string
	}{
		{0.9, LabelVeryPositive},
		{0.51, LabelVeryPositive},
		{0.5, LabelPositive},
		{0.3, LabelPositive},
		{0.2, LabelNeutral},
		{0, LabelNeutral},
		{-0.2, LabelNeutral},
		{-0.3, LabelNegative},
		{-0.5, LabelNegative},
		{-0.51, LabelVeryNegative},
		{-1, LabelVeryNegative},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Label(tc.score), "score %v", tc.score)
	}
}

func TestSentimentRange(t *testing.T) {
	texts := []string{
		"This course was absolutely amazing, best experience of my degree!",
		"Terrible, horrible course. I hated every second of it.",
		"The lecture is on Tuesday.",
	}
	for _, text := range texts {
		score, label := Sentiment(text)
		require.GreaterOrEqual(t, score, -1.0)
		require.LessOrEqual(t, score, 1.0)
		require.Equal(t, Label(score), label)
	}
}

func TestSentimentEmptyText(t *testing.T) {
	score, label := Sentiment("")
	require.Equal(t, 0.0, score)
	require.Equal(t, LabelNeutral, label)

	score, label = Sentiment("   \n\t ")
	require.Equal(t, 0.0, score)
	require.Equal(t, LabelNeutral, label)
}

func TestSentimentPolarity(t *testing.T) {
	positive, _ := Sentiment("I love this course, it is wonderful and the material is great.")
	negative, _ := Sentiment("I hate this course, it is awful and the material is terrible.")
	require.Greater(t, positive, 0.0)
	require.Less(t, negative, 0.0)
}

func TestTags(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "easy keyword",
			text:     "CISC 121 is a bird course, take it",
			expected: []string{TagEasy},
		},
		{
			name:     "negation suppresses easy",
			text:     "this class was not easy at all",
			expected: nil,
		},
		{
			name:     "negation suppresses hard",
			text:     "honestly not difficult if you do the readings",
			expected: []string{TagCourseStructure},
		},
		{
			name:     "professor mention",
			text:     "the prof explains everything really well",
			expected: []string{TagProfessorReview},
		},
		{
			name:     "multiple tags",
			text:     "the midterm was brutal but the instructor posts great resources",
			expected: []string{TagHard, TagProfessorReview, TagCourseStructure, TagTips},
		},
		{
			name:     "no tags",
			text:     "I took it in second year",
			expected: nil,
		},
		{
			name:     "case insensitive",
			text:     "The WORKLOAD is INTENSE",
			expected: []string{TagHard, TagCourseStructure},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Tags(tc.text))
		})
	}
}
