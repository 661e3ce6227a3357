package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"coursecentral-backend/lib/extract"
	"coursecentral-backend/lib/htmlutil"
	"coursecentral-backend/lib/ragstore"

	"github.com/PuerkitoBio/goquery"
)

// BlockResult carries one parsed course block or the reason it could not
// be parsed. Parse failures are per-block values; they never stop a page.
type BlockResult struct {
	Course ragstore.Course
	Err    error
}

// DepartmentPages resolves the per-department course pages linked from a
// faculty's sitemap index. Relative hrefs resolve against the calendar
// host.
func DepartmentPages(doc *goquery.Document) []htmlutil.Anchor {
	base, err := url.Parse(calendarBaseURL)
	if err != nil {
		base = nil
	}
	return htmlutil.GetAnchors(doc.Find("div.sitemap a"), base)
}

// ParseCourseBlocks parses every div.courseblock on a calendar page.
func ParseCourseBlocks(doc *goquery.Document) []BlockResult {
	var results []BlockResult
	doc.Find("div.courseblock").Each(func(_ int, block *goquery.Selection) {
		course, err := parseCourseBlock(block)
		results = append(results, BlockResult{Course: course, Err: err})
	})
	return results
}

func detailText(block *goquery.Selection, selector, label string) string {
	sel := block.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	text := htmlutil.CleanInline(sel.Text())
	return strings.TrimPrefix(text, label)
}

func parseCourseBlock(block *goquery.Selection) (ragstore.Course, error) {
	rawCode := detailText(block, "span.detail-code", "")
	if rawCode == "" {
		return ragstore.Course{}, fmt.Errorf("course block has no detail-code")
	}
	code, ok := extract.CourseCode(rawCode)
	if !ok {
		// a handful of calendar entries carry non-standard codes,
		// keep them verbatim rather than dropping the record
		code = rawCode
	}

	name := detailText(block, "span.detail-title", "")
	if name == "" {
		return ragstore.Course{}, fmt.Errorf("course block %s has no detail-title", code)
	}

	var outcomes []string
	block.Find("span.detail-cim_los li").Each(func(_ int, li *goquery.Selection) {
		outcomes = append(outcomes, htmlutil.CleanInline(li.Text()))
	})

	return ragstore.Course{
		Code:             code,
		Name:             name,
		Description:      htmlutil.CleanInline(block.Find("div.courseblockextra").First().Text()),
		OfferingFaculty:  detailText(block, "span.detail-offering_faculty", "Offering Faculty: "),
		LearningHours:    detailText(block, "span.detail-learning_hours", "Learning Hours: "),
		Units:            detailText(block, "span.detail-hours_html", "Units: "),
		Requirements:     detailText(block, "span.detail-requirements", "Requirements: "),
		Equivalencies:    detailText(block, "span.detail-course_equivalencies", "Course Equivalencies: "),
		LearningOutcomes: outcomes,
	}, nil
}
