package catalog

import (
	"context"
	"log/slog"

	"coursecentral-backend/lib/ragstore"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/catalog")

// RunContext bundles everything one catalog run needs. Reference
// snapshots are taken once at the start of the run; there is no
// package-level state.
type RunContext struct {
	Store     ragstore.Store
	Client    *Client
	Faculties []Faculty
}

type Report struct {
	PagesFetched  int
	PagesFailed   int
	Scraped       int
	ParseFailures int
	Inserted      int
	Updated       int
}

// Run walks every configured faculty, parses its course blocks and
// upserts the result, preserving stored analytics fields. A failed page
// fetch skips that page; a store failure aborts the run.
func Run(ctx context.Context, rc RunContext) (Report, error) {
	ctx, span := tracer.Start(ctx, "catalog:Run")
	defer span.End()

	var report Report

	prev, err := rc.Store.CourseAnalyticsSnapshot(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to snapshot stored courses")
		return report, err
	}

	var scraped []ragstore.Course
	for _, faculty := range rc.Faculties {
		slog.InfoContext(ctx, "scraping faculty", "faculty", faculty.Name)
		courses := scrapeFaculty(ctx, rc.Client, faculty, &report)
		scraped = append(scraped, courses...)
		slog.InfoContext(ctx, "scraped faculty", "faculty", faculty.Name, "courses", len(courses))
	}
	report.Scraped = len(scraped)

	toInsert, toUpdate := Reconcile(scraped, prev)
	report.Inserted = len(toInsert)
	report.Updated = len(toUpdate)

	err = rc.Store.UpsertCourses(ctx, append(toInsert, toUpdate...))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to upsert courses")
		return report, err
	}

	span.SetAttributes(
		attribute.Int("scraped", report.Scraped),
		attribute.Int("inserted", report.Inserted),
		attribute.Int("updated", report.Updated),
		attribute.Int("parse_failures", report.ParseFailures),
	)
	return report, nil
}

func scrapeFaculty(ctx context.Context, client *Client, faculty Faculty, report *Report) []ragstore.Course {
	ctx, span := tracer.Start(ctx, "catalog:scrapeFaculty")
	defer span.End()
	span.SetAttributes(attribute.String("faculty", faculty.Name))

	pages := faculty.URLs
	if faculty.Sitemap {
		pages = nil
		for _, indexURL := range faculty.URLs {
			doc, err := client.FetchDocument(ctx, indexURL)
			report.PagesFetched++
			if err != nil {
				report.PagesFailed++
				span.RecordError(err)
				slog.WarnContext(ctx, "failed to fetch faculty index", "url", indexURL, "err", err)
				continue
			}
			for _, anchor := range DepartmentPages(doc) {
				pages = append(pages, anchor.Href)
			}
			PoliteWait()
		}
	}

	var courses []ragstore.Course
	for _, pageURL := range pages {
		doc, err := client.FetchDocument(ctx, pageURL)
		report.PagesFetched++
		if err != nil {
			report.PagesFailed++
			span.RecordError(err)
			slog.WarnContext(ctx, "failed to fetch course page", "url", pageURL, "err", err)
			continue
		}

		for _, result := range ParseCourseBlocks(doc) {
			if result.Err != nil {
				report.ParseFailures++
				slog.WarnContext(ctx, "skipping course block", "url", pageURL, "err", result.Err)
				continue
			}
			course := result.Course
			course.OfferingFaculty = orDefault(course.OfferingFaculty, faculty.Name)
			courses = append(courses, course)
		}
		PoliteWait()
	}
	return courses
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
