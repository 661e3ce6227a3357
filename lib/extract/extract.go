// Package extract pulls canonical-shaped identifiers out of free text.
//
// Both extractors are first-match, not best-match: text with several
// candidates silently picks the earliest occurrence. Downstream dedup
// keys depend on this staying stable across runs, so do not "improve"
// it to best-match.
package extract

import (
	"regexp"
	"strings"
)

var courseCodeRegex = regexp.MustCompile(`\b[A-Za-z]{4}\s?\d{3}\b`)
var profNameRegex = regexp.MustCompile(`\b(?:Prof\.?|Dr\.?)\s+[A-Z][a-z]+\s+[A-Z][a-z]+\b`)

// CourseCode finds the first course-code-shaped token and normalizes it
// to "LLLL NNN" (uppercase, exactly one space).
func CourseCode(text string) (string, bool) {
	match := courseCodeRegex.FindString(text)
	if match == "" {
		return "", false
	}
	code := strings.ToUpper(strings.ReplaceAll(match, " ", ""))
	return code[:4] + " " + code[4:], true
}

// MentionsCourseCode reports whether any course-code-shaped token
// appears in the text.
func MentionsCourseCode(text string) bool {
	return courseCodeRegex.MatchString(text)
}

// ProfessorName finds the first "Prof./Dr. First Last" style mention.
func ProfessorName(text string) (string, bool) {
	match := profNameRegex.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}
