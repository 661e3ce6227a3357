package reddit

import (
	"strings"

	"coursecentral-backend/lib/extract"
)

// Phrases that mark a thread as course-discussion even when no course
// code appears in it.
var interestKeywords = []string{
	"courses",
	"course",
	"classes",
	"electives",
	"program requirements",
	"bird courses",
	"easy a",
}

const (
	minPostScore     = 2
	minCommentScore  = 1
	minCommentLength = 15
)

// PostOfInterest reports whether a thread is worth extracting: a text
// post with some traction whose title or body talks about courses.
func PostOfInterest(p Post) bool {
	if !p.IsSelf || p.Over18 || p.Locked {
		return false
	}
	if strings.TrimSpace(p.SelfText) == "" {
		return false
	}
	if p.Score < minPostScore || p.NumComments <= 0 {
		return false
	}

	combined := p.Title + " " + p.SelfText
	if extract.MentionsCourseCode(combined) {
		return true
	}
	lower := strings.ToLower(combined)
	for _, kw := range interestKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CommentOfInterest drops deleted, trivially short and downvoted
// comments.
func CommentOfInterest(c Comment) bool {
	body := strings.TrimSpace(c.Body)
	if body == "" || body == "[deleted]" || body == "[removed]" {
		return false
	}
	if c.Score < minCommentScore {
		return false
	}
	return len(body) >= minCommentLength
}
