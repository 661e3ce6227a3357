package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourseCode(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
		found    bool
	}{
		{"I took CISC 124 last term", "CISC 124", true},
		{"I took CISC124 last term", "CISC 124", true},
		{"cisc 124 was fine", "CISC 124", true},
		{"thinking about Phys 104 or math 120", "PHYS 104", true},
		{"no codes here", "", false},
		{"CS 124 is too short a prefix", "", false},
		{"ELEC 2210 has too many digits", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		code, ok := CourseCode(tc.text)
		require.Equal(t, tc.found, ok, "text %q", tc.text)
		require.Equal(t, tc.expected, code, "text %q", tc.text)
	}
}

func TestCourseCodeFirstMatch(t *testing.T) {
	code, ok := CourseCode("comparing CISC 121 with CISC 124")
	require.True(t, ok)
	require.Equal(t, "CISC 121", code)
}

func TestMentionsCourseCode(t *testing.T) {
	require.True(t, MentionsCourseCode("anyone taken anat 100?"))
	require.False(t, MentionsCourseCode("anyone taken anatomy?"))
}

func TestProfessorName(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
		found    bool
	}{
		{"the prof, Dr. John Smith, was great", "Dr. John Smith", true},
		{"Prof. Jane Doe curves the final", "Prof. Jane Doe", true},
		{"Dr Alan Turing without the period", "Dr Alan Turing", true},
		{"ask your professor about it", "", false},
		{"Dr. Smith alone is not enough", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		name, ok := ProfessorName(tc.text)
		require.Equal(t, tc.found, ok, "text %q", tc.text)
		require.Equal(t, tc.expected, name, "text %q", tc.text)
	}
}

func TestProfessorNameFirstMatch(t *testing.T) {
	name, ok := ProfessorName("Dr. John Smith is stricter than Prof. Jane Doe")
	require.True(t, ok)
	require.Equal(t, "Dr. John Smith", name)
}
