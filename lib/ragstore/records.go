package ragstore

import (
	"database/sql"
	"time"

	"coursecentral-backend/lib/textutil"
)

// Reserved identifiers meaning "relevant but not attributable to one
// specific course/professor". Excluded from every canonical snapshot.
const (
	GeneralCourse = "general_course"
	GeneralProf   = "general_prof"
)

const (
	SourceReddit           = "reddit"
	SourceRateMyProfessors = "ratemyprofessors"
)

// Dates are stored as ISO date strings.
const DateFormat = "2006-01-02"

// Course is one catalog entry, keyed by its "LLLL NNN" course code.
// AverageGPA and AverageEnrollment are owned by a downstream analytics
// process: the scrape path only ever copies them forward.
type Course struct {
	Code             string
	Name             string
	Description      string
	OfferingFaculty  string
	LearningHours    string
	Units            string
	Requirements     string
	Equivalencies    string
	LearningOutcomes []string

	AverageGPA        sql.NullFloat64
	AverageEnrollment sql.NullFloat64
}

// Professor is one professor-review-site profile, keyed by the id slug
// of its source URL. NumRatings is the change-detection signal;
// LatestCommentDate is the incremental-scrape high-watermark
// (zero time means never scraped).
type Professor struct {
	ID                string
	Name              string
	OverallRating     sql.NullFloat64
	PercentRetake     sql.NullFloat64
	LevelOfDifficulty sql.NullFloat64
	Tags              []string
	LatestCommentDate time.Time
	NumRatings        int64
	URL               string
}

// Chunk is one unit of free text (a review or a forum comment) with its
// extracted metadata. Text keeps the original casing; the normalized
// form is derived for dedup.
type Chunk struct {
	Text             string
	Source           string
	CourseCode       string
	ProfessorName    string
	SourceURL        string
	Tags             []string
	SentimentScore   float64
	SentimentLabel   string
	CreatedAt        time.Time
	QualityRating    sql.NullFloat64
	DifficultyRating sql.NullFloat64
	Upvotes          sql.NullInt64
}

// ChunkKey identifies a chunk for dedup purposes within a source scope.
type ChunkKey struct {
	NormalizedText string
	Date           string
}

func (c Chunk) Key() ChunkKey {
	return ChunkKey{
		NormalizedText: textutil.Normalize(c.Text),
		Date:           c.CreatedAt.Format(DateFormat),
	}
}

// CourseAnalytics is the protected slice of a stored course.
type CourseAnalytics struct {
	AverageGPA        sql.NullFloat64
	AverageEnrollment sql.NullFloat64
}

// ProfessorSignal is the stored state that drives incremental re-scrapes.
type ProfessorSignal struct {
	NumRatings        int64
	LatestCommentDate time.Time
}
