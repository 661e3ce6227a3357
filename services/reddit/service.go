package reddit

import (
	"context"
	"log/slog"

	"coursecentral-backend/lib/ragstore"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/reddit")

// RunContext bundles everything one collection run needs. The canonical
// identifier sets and the processed-thread set are snapshotted once at
// the start of the run.
type RunContext struct {
	Store     ragstore.Store
	Client    *Client
	Subreddit string
	PostLimit int
}

type Report struct {
	PostsListed     int
	PostsOfInterest int
	PostsSkipped    int
	ChunksExtracted int
	ChunksInserted  int
}

// Run lists recent threads, filters them, extracts chunks from each
// unprocessed thread of interest and appends them to the store. Threads
// whose URL already has stored chunks are skipped entirely. A failed
// comment fetch skips that thread; a store failure aborts the run.
func Run(ctx context.Context, rc RunContext) (Report, error) {
	ctx, span := tracer.Start(ctx, "reddit:Run")
	defer span.End()

	var report Report

	validCourses, err := rc.Store.CourseCodes(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to snapshot course codes")
		return report, err
	}
	validProfs, err := rc.Store.ProfessorNames(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to snapshot professor names")
		return report, err
	}
	processed, err := rc.Store.ProcessedPostURLs(ctx, ragstore.SourceReddit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to snapshot processed threads")
		return report, err
	}

	posts, err := rc.Client.NewPosts(ctx, rc.Subreddit, rc.PostLimit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list posts")
		return report, err
	}
	report.PostsListed = len(posts)

	var chunks []ragstore.Chunk
	for _, post := range posts {
		if !PostOfInterest(post) {
			continue
		}
		report.PostsOfInterest++

		if _, done := processed[post.URL]; done {
			report.PostsSkipped++
			slog.DebugContext(ctx, "skipping processed thread", "url", post.URL)
			continue
		}

		comments, err := rc.Client.Comments(ctx, rc.Subreddit, post.ID)
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch comments", "url", post.URL, "err", err)
			continue
		}
		PoliteWait()

		extracted := ExtractChunksFromThread(post, comments, validCourses, validProfs)
		chunks = append(chunks, extracted...)
		slog.InfoContext(ctx, "extracted thread",
			"url", post.URL, "comments", len(comments), "chunks", len(extracted))
	}
	report.ChunksExtracted = len(chunks)

	inserted, err := rc.Store.InsertChunks(ctx, chunks)
	report.ChunksInserted = inserted
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to insert chunks")
		return report, err
	}

	span.SetAttributes(
		attribute.Int("posts_listed", report.PostsListed),
		attribute.Int("posts_of_interest", report.PostsOfInterest),
		attribute.Int("chunks_inserted", report.ChunksInserted),
	)
	return report, nil
}
