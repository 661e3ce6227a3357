package classify

import (
	"regexp"
	"strings"
)

const (
	TagEasy            = "easy"
	TagHard            = "hard"
	TagProfessorReview = "professor_review"
	TagCourseStructure = "course_structure"
	TagTips            = "tips"
)

// tagRule triggers its tag when any keyword appears in the lower-cased
// text, unless the negation pattern matches first. The keyword lists are
// data; extending a tag must not require touching the matching code.
type tagRule struct {
	tag      string
	keywords []string
	negation *regexp.Regexp
}

var tagRules = []tagRule{
	{
		tag:      TagEasy,
		keywords: []string{"easy", "light", "bird course", "manageable", "straightforward"},
		negation: regexp.MustCompile(`not\s+(easy|light|bird course|straightforward)`),
	},
	{
		tag:      TagHard,
		keywords: []string{"hard", "tough", "difficult", "challenging", "brutal", "intense"},
		negation: regexp.MustCompile(`not\s+(hard|tough|difficult|challenging|brutal|intense)`),
	},
	{
		tag:      TagProfessorReview,
		keywords: []string{"professor", "prof", "lecturer", "teaching", "instructor", "teaches", "taught"},
	},
	{
		tag:      TagCourseStructure,
		keywords: []string{"exam", "midterm", "final", "assignment", "homework", "reading", "workload", "labs", "quizzes", "group project"},
	},
	{
		tag:      TagTips,
		keywords: []string{"recommend", "tip", "advice", "suggest", "strategy", "resource", "how to study"},
	},
}

// Tags returns every topical tag triggered by the text. Tags are not
// mutually exclusive; the result may be empty.
func Tags(text string) []string {
	body := strings.ToLower(text)

	var tags []string
	for _, rule := range tagRules {
		if rule.negation != nil && rule.negation.MatchString(body) {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(body, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	return tags
}
