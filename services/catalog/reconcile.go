package catalog

import (
	"coursecentral-backend/lib/ragstore"
)

// Reconcile splits freshly scraped courses against the stored snapshot.
// Courses not in the snapshot become inserts with null analytics fields;
// courses already stored become updates that carry the stored
// average_gpa / average_enrollment forward, since those are owned by a
// downstream process and a catalog re-scrape must never clear them.
// Duplicate course codes in the input keep the first occurrence.
func Reconcile(
	scraped []ragstore.Course,
	prev map[string]ragstore.CourseAnalytics,
) (toInsert, toUpdate []ragstore.Course) {
	seen := make(map[string]struct{}, len(scraped))

	for _, course := range scraped {
		if _, dup := seen[course.Code]; dup {
			continue
		}
		seen[course.Code] = struct{}{}

		analytics, exists := prev[course.Code]
		if !exists {
			toInsert = append(toInsert, course)
			continue
		}
		course.AverageGPA = analytics.AverageGPA
		course.AverageEnrollment = analytics.AverageEnrollment
		toUpdate = append(toUpdate, course)
	}
	return toInsert, toUpdate
}
