package rmp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSet(codes ...string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

func TestCleanAndMapCourseCodes(t *testing.T) {
	valid := validSet("CISC 121", "CISC 124", "CISC 235", "MATH 121")

	testCases := []struct {
		name     string
		labels   []string
		expected map[string]string
	}{
		{
			name:   "exact matches ignore spacing and case",
			labels: []string{"CISC121", "cisc 124", "MATH121"},
			expected: map[string]string{
				"CISC121":  "CISC 121",
				"cisc 124": "CISC 124",
				"MATH121":  "MATH 121",
			},
		},
		{
			name:   "concatenated numbers are ambiguous",
			labels: []string{"CISC121", "CISC124", "CISC121124"},
			expected: map[string]string{
				"CISC121":    "CISC 121",
				"CISC124":    "CISC 124",
				"CISC121124": "",
			},
		},
		{
			name:   "bare number pairs with a derived prefix",
			labels: []string{"CISC121", "121"},
			expected: map[string]string{
				"CISC121": "CISC 121",
				"121":     "CISC 121",
			},
		},
		{
			name:   "bare number pairs even when the prefix comes later",
			labels: []string{"235", "CISC235"},
			expected: map[string]string{
				"235":     "CISC 235",
				"CISC235": "CISC 235",
			},
		},
		{
			name:   "letters only is ambiguous",
			labels: []string{"CISC121", "CISC"},
			expected: map[string]string{
				"CISC121": "CISC 121",
				"CISC":    "",
			},
		},
		{
			name:   "unknown department",
			labels: []string{"ZZZZ101"},
			expected: map[string]string{
				"ZZZZ101": "",
			},
		},
		{
			name:   "bare number with no derived prefix",
			labels: []string{"121"},
			expected: map[string]string{
				"121": "",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, CleanAndMapCourseCodes(tc.labels, valid))
		})
	}
}

func TestCleanAndMapCourseCodesIsIdempotent(t *testing.T) {
	valid := validSet("CISC 121", "CISC 124")
	labels := []string{"CISC121", "cisc 124", "121", "CISC121124"}

	first := CleanAndMapCourseCodes(labels, valid)
	second := CleanAndMapCourseCodes(labels, valid)
	require.Equal(t, first, second)
}

func TestDigitChunks(t *testing.T) {
	require.Equal(t, []string{"121", "124"}, digitChunks("121124"))
	require.Equal(t, []string{"121"}, digitChunks("CISC121"))
	require.Equal(t, []string{"121", "124"}, digitChunks("121/124"))
	require.Equal(t, []string{"121", "1"}, digitChunks("1211"))
	require.Nil(t, digitChunks("CISC"))
}
