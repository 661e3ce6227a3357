package reddit

import (
	"database/sql"

	"coursecentral-backend/lib/classify"
	"coursecentral-backend/lib/extract"
	"coursecentral-backend/lib/ragstore"
	"coursecentral-backend/lib/textutil"
)

// attribution is the (course, professor) pair a piece of thread text
// resolves to. Either side may be a sentinel; a fully empty attribution
// means the text is off-topic and its chunk is dropped.
type attribution struct {
	courseCode    string
	professorName string
}

func (a attribution) empty() bool {
	return a.courseCode == "" && a.professorName == ""
}

// withSentinels fills any unresolved side with its sentinel. Stored
// chunks always carry either a canonical identifier or the sentinel,
// never an empty key.
func (a attribution) withSentinels() attribution {
	if a.courseCode == "" {
		a.courseCode = ragstore.GeneralCourse
	}
	if a.professorName == "" {
		a.professorName = ragstore.GeneralProf
	}
	return a
}

// attributeText extracts a course code and professor name from text and
// resolves them against the canonical sets. An extracted identifier
// that is not canonical degrades to the matching sentinel rather than
// polluting the store with an unknown key.
func attributeText(text string, validCourses, validProfs map[string]struct{}) attribution {
	var a attribution

	if code, ok := extract.CourseCode(text); ok {
		if _, canonical := validCourses[code]; canonical {
			a.courseCode = code
		} else {
			a.courseCode = ragstore.GeneralCourse
		}
	}
	if name, ok := extract.ProfessorName(text); ok {
		if _, canonical := validProfs[name]; canonical {
			a.professorName = name
		} else {
			a.professorName = ragstore.GeneralProf
		}
	}
	return a
}

// ExtractChunksFromThread turns one filtered thread into chunks: the
// post body plus every comment of interest. Comments inherit the
// post's attribution unless their own text resolves one. Chunks with no
// attribution at all are dropped, as are repeats of the same
// (text, date) within the thread.
func ExtractChunksFromThread(
	post Post,
	comments []Comment,
	validCourses, validProfs map[string]struct{},
) []ragstore.Chunk {
	postAttr := attributeText(post.Title+" "+post.SelfText, validCourses, validProfs)

	var chunks []ragstore.Chunk
	seen := map[ragstore.ChunkKey]struct{}{}

	push := func(chunk ragstore.Chunk) {
		key := chunk.Key()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		chunks = append(chunks, chunk)
	}

	if !postAttr.empty() {
		stored := postAttr.withSentinels()
		text := textutil.Clean(post.Title + "\n" + post.SelfText)
		score, label := classify.Sentiment(text)
		push(ragstore.Chunk{
			Text:           text,
			Source:         ragstore.SourceReddit,
			CourseCode:     stored.courseCode,
			ProfessorName:  stored.professorName,
			SourceURL:      post.URL,
			Tags:           classify.Tags(text),
			SentimentScore: score,
			SentimentLabel: label,
			CreatedAt:      post.CreatedUTC,
			Upvotes:        sql.NullInt64{Int64: post.Score, Valid: true},
		})
	}

	for _, comment := range comments {
		if !CommentOfInterest(comment) {
			continue
		}
		attr := attributeText(comment.Body, validCourses, validProfs)
		if attr.courseCode == "" {
			attr.courseCode = postAttr.courseCode
		}
		if attr.professorName == "" {
			attr.professorName = postAttr.professorName
		}
		if attr.empty() {
			continue
		}
		attr = attr.withSentinels()

		text := textutil.Clean(comment.Body)
		score, label := classify.Sentiment(text)
		push(ragstore.Chunk{
			Text:           text,
			Source:         ragstore.SourceReddit,
			CourseCode:     attr.courseCode,
			ProfessorName:  attr.professorName,
			SourceURL:      post.URL,
			Tags:           classify.Tags(text),
			SentimentScore: score,
			SentimentLabel: label,
			CreatedAt:      comment.CreatedUTC,
			Upvotes:        sql.NullInt64{Int64: comment.Score, Valid: true},
		})
	}
	return chunks
}
