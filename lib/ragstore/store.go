package ragstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"coursecentral-backend/lib/textutil"

	_ "embed"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

// writes are flushed to the database in batches of this size unless
// configured otherwise. purely a throughput tradeoff with remote
// databases, not a correctness requirement.
const DefaultBatchSize = 50

type Store struct {
	db        *sql.DB
	batchSize int
}

func NewStore(database *sql.DB) Store {
	return Store{db: database, batchSize: DefaultBatchSize}
}

func NewStoreBatchSize(database *sql.DB, batchSize int) Store {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return Store{db: database, batchSize: batchSize}
}

func (s Store) InitSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

func marshalStrings(list []string) string {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func unmarshalDate(v sql.NullString) time.Time {
	if !v.Valid || v.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateFormat, v.String)
	if err != nil {
		slog.Warn("unparseable stored date", "value", v.String, "err", err)
		return time.Time{}
	}
	return t
}

func nullDate(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(DateFormat), Valid: true}
}

// CourseAnalyticsSnapshot reads the protected analytics fields of every
// stored course, keyed by course code.
func (s Store) CourseAnalyticsSnapshot(ctx context.Context) (map[string]CourseAnalytics, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT course_code, average_gpa, average_enrollment FROM courses`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]CourseAnalytics{}
	for rows.Next() {
		var code string
		var a CourseAnalytics
		err := rows.Scan(&code, &a.AverageGPA, &a.AverageEnrollment)
		if err != nil {
			return nil, err
		}
		out[code] = a
	}
	return out, rows.Err()
}

// CourseCodes reads the canonical course-code set, excluding the
// sentinel entry.
func (s Store) CourseCodes(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT course_code FROM courses WHERE course_code != ?`,
		GeneralCourse,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		out[code] = struct{}{}
	}
	return out, rows.Err()
}

// ProfessorNames reads the canonical professor-name set, excluding the
// sentinel entry.
func (s Store) ProfessorNames(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT name FROM professors WHERE name != ?`,
		GeneralProf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = struct{}{}
	}
	return out, rows.Err()
}

// ProfessorSignals reads the incremental-scrape state of every stored
// professor, keyed by name.
func (s Store) ProfessorSignals(ctx context.Context) (map[string]ProfessorSignal, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT name, num_ratings, latest_comment_date FROM professors WHERE name != ?`,
		GeneralProf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]ProfessorSignal{}
	for rows.Next() {
		var name string
		var numRatings int64
		var date sql.NullString
		err := rows.Scan(&name, &numRatings, &date)
		if err != nil {
			return nil, err
		}
		out[name] = ProfessorSignal{
			NumRatings:        numRatings,
			LatestCommentDate: unmarshalDate(date),
		}
	}
	return out, rows.Err()
}

// ChunkKeys reads the (normalized text, date) keys of every stored chunk
// attributed to the given professor.
func (s Store) ChunkKeys(ctx context.Context, professorName string) (map[ChunkKey]struct{}, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT normalized_text, created_at FROM rag_chunks WHERE professor_name = ?`,
		professorName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[ChunkKey]struct{}{}
	for rows.Next() {
		var key ChunkKey
		if err := rows.Scan(&key.NormalizedText, &key.Date); err != nil {
			return nil, err
		}
		out[key] = struct{}{}
	}
	return out, rows.Err()
}

// ProcessedPostURLs reads the source urls of every stored chunk with the
// given source, used to skip already-processed threads.
func (s Store) ProcessedPostURLs(ctx context.Context, source string) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT DISTINCT source_url FROM rag_chunks WHERE source = ?`,
		source,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		out[url] = struct{}{}
	}
	return out, rows.Err()
}

// UpsertCourses writes courses in batches, keyed on course_code.
// Every column the record carries is written, including the analytics
// fields, so callers must copy those forward first (see
// catalog.Reconcile).
func (s Store) UpsertCourses(ctx context.Context, courses []Course) error {
	for start := 0; start < len(courses); start += s.batchSize {
		batch := courses[start:min(start+s.batchSize, len(courses))]
		err := s.upsertCourseBatch(ctx, batch)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "upserted course batch", "n", len(batch))
	}
	return nil
}

func (s Store) upsertCourseBatch(ctx context.Context, batch []Course) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range batch {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO courses (
				course_code, course_name, course_description,
				offering_faculty, learning_hours, course_units,
				course_requirements, course_equivalencies,
				course_learning_outcomes, average_gpa, average_enrollment
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (course_code) DO UPDATE SET
				course_name = excluded.course_name,
				course_description = excluded.course_description,
				offering_faculty = excluded.offering_faculty,
				learning_hours = excluded.learning_hours,
				course_units = excluded.course_units,
				course_requirements = excluded.course_requirements,
				course_equivalencies = excluded.course_equivalencies,
				course_learning_outcomes = excluded.course_learning_outcomes,
				average_gpa = excluded.average_gpa,
				average_enrollment = excluded.average_enrollment`,
			c.Code, c.Name, c.Description,
			c.OfferingFaculty, c.LearningHours, c.Units,
			c.Requirements, c.Equivalencies,
			marshalStrings(c.LearningOutcomes),
			c.AverageGPA, c.AverageEnrollment,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// UpsertProfessors writes professors in batches, keyed on id.
func (s Store) UpsertProfessors(ctx context.Context, profs []Professor) error {
	for start := 0; start < len(profs); start += s.batchSize {
		batch := profs[start:min(start+s.batchSize, len(profs))]
		err := s.upsertProfessorBatch(ctx, batch)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "upserted professor batch", "n", len(batch))
	}
	return nil
}

func (s Store) upsertProfessorBatch(ctx context.Context, batch []Professor) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range batch {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO professors (
				id, name, overall_rating, percent_retake,
				level_of_difficulty, professor_tags,
				latest_comment_date, num_ratings, url
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				name = excluded.name,
				overall_rating = excluded.overall_rating,
				percent_retake = excluded.percent_retake,
				level_of_difficulty = excluded.level_of_difficulty,
				professor_tags = excluded.professor_tags,
				latest_comment_date = excluded.latest_comment_date,
				num_ratings = excluded.num_ratings,
				url = excluded.url`,
			p.ID, p.Name, p.OverallRating, p.PercentRetake,
			p.LevelOfDifficulty, marshalStrings(p.Tags),
			nullDate(p.LatestCommentDate), p.NumRatings, p.URL,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// InsertChunks appends chunks in batches. Rows colliding with the
// (source_url, normalized_text, created_at) dedup index are silently
// skipped; the returned count is the number of rows actually inserted.
func (s Store) InsertChunks(ctx context.Context, chunks []Chunk) (int, error) {
	inserted := 0
	for start := 0; start < len(chunks); start += s.batchSize {
		batch := chunks[start:min(start+s.batchSize, len(chunks))]
		n, err := s.insertChunkBatch(ctx, batch)
		inserted += n
		if err != nil {
			return inserted, err
		}
		slog.DebugContext(ctx, "inserted chunk batch", "n", n, "duplicates", len(batch)-n)
	}
	return inserted, nil
}

func (s Store) insertChunkBatch(ctx context.Context, batch []Chunk) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for _, c := range batch {
		res, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO rag_chunks (
				text, normalized_text, source, course_code,
				professor_name, source_url, tags,
				sentiment_score, sentiment_label, created_at,
				quality_rating, difficulty_rating, upvotes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Text, textutil.Normalize(c.Text), c.Source, c.CourseCode,
			c.ProfessorName, c.SourceURL, marshalStrings(c.Tags),
			c.SentimentScore, c.SentimentLabel,
			c.CreatedAt.Format(DateFormat),
			c.QualityRating, c.DifficultyRating, c.Upvotes,
		)
		if err != nil {
			return inserted, err
		}
		n, err := res.RowsAffected()
		if err == nil {
			inserted += int(n)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
