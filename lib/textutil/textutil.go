package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var blankLinesRegex = regexp.MustCompile(`\n\s*\n`)
var bulletRegex = regexp.MustCompile(`(?m)^[a-z]\)`)

// Normalize produces the comparison form of a chunk of free text:
// trimmed, case folded, all whitespace runs collapsed to single spaces.
// This is the text half of the (text, date) dedup key; the original case
// is kept for storage.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return whitespaceRegex.ReplaceAllString(text, " ")
}

// Clean tidies free text for storage without changing its case:
// runs of blank lines become one blank line and "a)"-style bullets
// become dashes.
func Clean(text string) string {
	text = blankLinesRegex.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)
	return bulletRegex.ReplaceAllString(text, "-")
}
