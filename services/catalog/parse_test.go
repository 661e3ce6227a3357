package catalog

import (
	"strings"
	"testing"

	"coursecentral-backend/lib/ragstore"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const courseBlockPage = `
<html><body>
<div class="courseblock">
	<span class="detail-code"><strong>CISC 124</strong></span>
	<span class="detail-title"><strong>Introduction to Computing Science II</strong></span>
	<div class="courseblockextra">
		Introduction to object-oriented design,   architecture and programming.
	</div>
	<span class="detail-offering_faculty"><strong>Offering Faculty: Faculty of Arts and Science</strong></span>
	<span class="detail-learning_hours"><strong>Learning Hours: 120</strong></span>
	<span class="detail-hours_html"><strong>Units: 3.00</strong></span>
	<span class="detail-requirements"><strong>Requirements: Prerequisite CISC 121</strong></span>
	<span class="detail-course_equivalencies"><strong>Course Equivalencies: CISC124, CMPE124</strong></span>
	<span class="detail-cim_los">
		<ul>
			<li>Write object-oriented programs.</li>
			<li>Design class hierarchies.</li>
		</ul>
	</span>
</div>
<div class="courseblock">
	<span class="detail-title"><strong>Block With No Code</strong></span>
</div>
<div class="courseblock">
	<span class="detail-code"><strong>MATH 121</strong></span>
	<span class="detail-title"><strong>Differential and Integral Calculus</strong></span>
</div>
</body></html>`

func TestParseCourseBlocks(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(courseBlockPage))
	require.NoError(t, err)

	results := ParseCourseBlocks(doc)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	expected := ragstore.Course{
		Code:            "CISC 124",
		Name:            "Introduction to Computing Science II",
		Description:     "Introduction to object-oriented design, architecture and programming.",
		OfferingFaculty: "Faculty of Arts and Science",
		LearningHours:   "120",
		Units:           "3.00",
		Requirements:    "Prerequisite CISC 121",
		Equivalencies:   "CISC124, CMPE124",
		LearningOutcomes: []string{
			"Write object-oriented programs.",
			"Design class hierarchies.",
		},
	}
	if diff := cmp.Diff(expected, results[0].Course); diff != "" {
		t.Fatalf("unexpected course (-want +got):\n%s", diff)
	}

	// a block without a detail-code is a per-block failure, not a fatal one
	require.Error(t, results[1].Err)

	require.NoError(t, results[2].Err)
	require.Equal(t, "MATH 121", results[2].Course.Code)
	require.Equal(t, "Differential and Integral Calculus", results[2].Course.Name)
	require.Empty(t, results[2].Course.LearningOutcomes)
}

const sitemapPage = `
<html><body>
<div class="sitemap">
	<ul>
		<li><a href="/academic-calendar/arts-science/course-descriptions/anat/">Anatomy (ANAT)</a></li>
		<li><a href="https://www.queensu.ca/academic-calendar/arts-science/course-descriptions/cisc/">Computing (CISC)</a></li>
	</ul>
</div>
<a href="/somewhere-else/">Outside the sitemap</a>
</body></html>`

func TestDepartmentPages(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sitemapPage))
	require.NoError(t, err)

	anchors := DepartmentPages(doc)
	require.Len(t, anchors, 2)
	require.Equal(t, "https://www.queensu.ca/academic-calendar/arts-science/course-descriptions/anat/", anchors[0].Href)
	require.Equal(t, "https://www.queensu.ca/academic-calendar/arts-science/course-descriptions/cisc/", anchors[1].Href)
}
