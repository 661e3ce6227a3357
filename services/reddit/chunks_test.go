package reddit

import (
	"testing"
	"time"

	"coursecentral-backend/lib/classify"
	"coursecentral-backend/lib/ragstore"

	"github.com/stretchr/testify/require"
)

var (
	validCourses = map[string]struct{}{"CISC 124": {}, "CISC 121": {}}
	// review-site profiles store bare names, so a titled mention like
	// "Dr. John Smith" is usually not canonical
	validProfs = map[string]struct{}{"John Smith": {}}
)

func thread(selfText string, comments ...Comment) (Post, []Comment) {
	post := Post{
		ID:          "abc123",
		Title:       "Course advice",
		SelfText:    selfText,
		URL:         "https://www.reddit.com/r/queensuniversity/comments/abc123/course_advice/",
		Score:       5,
		NumComments: int64(len(comments)),
		IsSelf:      true,
		CreatedUTC:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	return post, comments
}

func TestExtractChunksAttribution(t *testing.T) {
	post, comments := thread(
		"Thinking about taking CISC 124 in the fall.",
		Comment{
			Body:       "This course (CISC 124) was NOT easy but the prof, Dr. John Smith, was great",
			Score:      4,
			CreatedUTC: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		},
	)

	chunks := ExtractChunksFromThread(post, comments, validCourses, validProfs)
	require.Len(t, chunks, 2)

	comment := chunks[1]
	require.Equal(t, "CISC 124", comment.CourseCode)
	require.Equal(t, ragstore.GeneralProf, comment.ProfessorName)
	require.Contains(t, comment.Tags, classify.TagProfessorReview)
	require.NotContains(t, comment.Tags, classify.TagEasy)
	require.Equal(t, ragstore.SourceReddit, comment.Source)
	require.Equal(t, post.URL, comment.SourceURL)
	require.Equal(t, int64(4), comment.Upvotes.Int64)
}

func TestExtractChunksCanonicalProfessor(t *testing.T) {
	post, comments := thread(
		"Has anyone had Dr. John Smith for CISC 121?",
		Comment{
			Body:       "He teaches really well, would recommend his sections.",
			Score:      3,
			CreatedUTC: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		},
	)

	profs := map[string]struct{}{"Dr. John Smith": {}}
	chunks := ExtractChunksFromThread(post, comments, validCourses, profs)
	require.Len(t, chunks, 2)

	// the comment has no identifiers of its own; it inherits the post's
	require.Equal(t, "CISC 121", chunks[1].CourseCode)
	require.Equal(t, "Dr. John Smith", chunks[1].ProfessorName)
}

func TestExtractChunksNonCanonicalCourse(t *testing.T) {
	post, comments := thread("Is ANAT 100 worth taking as an elective?")

	chunks := ExtractChunksFromThread(post, comments, validCourses, validProfs)
	require.Len(t, chunks, 1)
	require.Equal(t, ragstore.GeneralCourse, chunks[0].CourseCode)
	// no professor resolved, so the stored side is the sentinel, never empty
	require.Equal(t, ragstore.GeneralProf, chunks[0].ProfessorName)
}

func TestExtractChunksProfessorOnlyGetsCourseSentinel(t *testing.T) {
	post, comments := thread(
		"Has anyone taken anything with Dr. John Smith?",
		Comment{
			Body:       "He is a fantastic lecturer, take anything he offers.",
			Score:      3,
			CreatedUTC: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		},
	)

	profs := map[string]struct{}{"Dr. John Smith": {}}
	chunks := ExtractChunksFromThread(post, comments, validCourses, profs)
	require.Len(t, chunks, 2)
	for _, chunk := range chunks {
		require.Equal(t, ragstore.GeneralCourse, chunk.CourseCode)
		require.Equal(t, "Dr. John Smith", chunk.ProfessorName)
	}
}

func TestExtractChunksDropsUnattributable(t *testing.T) {
	post, comments := thread(
		"What are good bird courses this year?",
		Comment{
			Body:       "Depends entirely on what program you are in honestly.",
			Score:      3,
			CreatedUTC: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		},
	)

	chunks := ExtractChunksFromThread(post, comments, validCourses, validProfs)
	// neither the post nor the comment resolves a course or professor
	require.Empty(t, chunks)
}

func TestExtractChunksFiltersComments(t *testing.T) {
	post, comments := thread(
		"Thoughts on CISC 124?",
		Comment{Body: "[deleted]", Score: 10, CreatedUTC: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)},
		Comment{Body: "yes", Score: 10, CreatedUTC: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)},
		Comment{
			Body:       "Solid course, the assignments build on each other nicely.",
			Score:      2,
			CreatedUTC: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		},
	)

	chunks := ExtractChunksFromThread(post, comments, validCourses, validProfs)
	require.Len(t, chunks, 2)
}

func TestExtractChunksDeduplicatesWithinThread(t *testing.T) {
	day := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	post, comments := thread(
		"Thoughts on CISC 124?",
		Comment{Body: "Great course, take it with anyone.", Score: 2, CreatedUTC: day},
		Comment{Body: "  great course,   take it with anyone. ", Score: 7, CreatedUTC: day},
	)

	chunks := ExtractChunksFromThread(post, comments, validCourses, validProfs)
	// post body plus one of the two identical comments
	require.Len(t, chunks, 2)
}
