package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  Hello   World  ", "hello world"},
		{"Tabs\tand\nnewlines", "tabs and newlines"},
		{"already normal", "already normal"},
		{"", ""},
		{"   \n\t ", ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Normalize(tc.input), "input %q", tc.input)
	}
}

func TestNormalizeIsStable(t *testing.T) {
	once := Normalize("  Some   REVIEW text \n spanning lines ")
	require.Equal(t, once, Normalize(once))
}

func TestClean(t *testing.T) {
	input := "First paragraph.\n\n\n\nSecond paragraph.\na) first point\nb) second point"
	expected := "First paragraph.\n\nSecond paragraph.\n- first point\n- second point"
	require.Equal(t, expected, Clean(input))
}

func TestCleanPreservesCase(t *testing.T) {
	require.Equal(t, "CISC 124 Was Great", Clean("  CISC 124 Was Great \n"))
}
