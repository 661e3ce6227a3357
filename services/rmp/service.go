package rmp

import (
	"context"
	"log/slog"

	"coursecentral-backend/lib/ragstore"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/rmp")

// RunContext bundles everything one review-collection run needs.
type RunContext struct {
	Store ragstore.Store
	Pages PageSource
	// BaseURL resolves relative card hrefs on the listing page.
	BaseURL string
}

const DefaultBaseURL = "https://www.ratemyprofessors.com"

type Report struct {
	ProfessorsListed int
	Candidates       int
	PagesFailed      int
	ParseFailures    int
	ChunksInserted   int
}

// Run walks the professor listing, selects the professors with new
// reviews and collects them one at a time. Each professor's record and
// chunks commit together before the next one starts, so an interrupted
// run resumes cleanly. A failed or unparseable page skips that
// professor; a store failure aborts the run.
func Run(ctx context.Context, rc RunContext) (Report, error) {
	ctx, span := tracer.Start(ctx, "rmp:Run")
	defer span.End()

	var report Report
	baseURL := rc.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	listing, err := rc.Pages.ProfessorListing(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load professor listing")
		return report, err
	}
	cards := ParseProfessorCards(listing, baseURL)
	report.ProfessorsListed = len(cards)

	signals, err := rc.Store.ProfessorSignals(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to snapshot professor signals")
		return report, err
	}
	validCourses, err := rc.Store.CourseCodes(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to snapshot course codes")
		return report, err
	}

	candidates := SelectProfessorsToScrape(cards, signals)
	report.Candidates = len(candidates)
	slog.InfoContext(ctx, "selected professors to collect",
		"listed", len(cards), "candidates", len(candidates))

	for _, candidate := range candidates {
		err := collectProfessor(ctx, rc.Store, rc.Pages, candidate, validCourses, &report)
		if err != nil {
			return report, err
		}
	}

	span.SetAttributes(
		attribute.Int("professors_listed", report.ProfessorsListed),
		attribute.Int("candidates", report.Candidates),
		attribute.Int("chunks_inserted", report.ChunksInserted),
	)
	return report, nil
}

func collectProfessor(
	ctx context.Context,
	store ragstore.Store,
	pages PageSource,
	candidate Candidate,
	validCourses map[string]struct{},
	report *Report,
) error {
	ctx, span := tracer.Start(ctx, "rmp:collectProfessor")
	defer span.End()
	span.SetAttributes(attribute.String("professor", candidate.Card.Name))

	doc, err := pages.ProfessorPage(ctx, candidate.Card.ID)
	if err != nil {
		report.PagesFailed++
		span.RecordError(err)
		slog.WarnContext(ctx, "failed to load professor page",
			"professor", candidate.Card.Name, "err", err)
		return nil
	}

	summary := ParseProfessorSummary(doc, candidate.Card.NumRatings > 0)
	courseMapping := CleanAndMapCourseCodes(CourseOptionsFromPage(doc), validCourses)

	blocks, parseErrs := ParseReviewBlocks(doc)
	report.ParseFailures += len(parseErrs)
	for _, perr := range parseErrs {
		slog.WarnContext(ctx, "skipping review block",
			"professor", candidate.Card.Name, "err", perr)
	}

	existingKeys, err := store.ChunkKeys(ctx, candidate.Card.Name)
	if err != nil {
		return err
	}

	chunks, stopped := ReconcileReviews(candidate, summary, blocks, courseMapping, existingKeys)
	prof := UpdatedProfessor(candidate, summary, chunks)

	err = store.UpsertProfessors(ctx, []ragstore.Professor{prof})
	if err != nil {
		return err
	}
	inserted, err := store.InsertChunks(ctx, chunks)
	report.ChunksInserted += inserted
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "collected professor",
		"professor", candidate.Card.Name,
		"reviews", len(blocks),
		"chunks", inserted,
		"hit_watermark", stopped)
	return nil
}
