package rmp

import (
	"time"

	"coursecentral-backend/lib/classify"
	"coursecentral-backend/lib/ragstore"
)

// Candidate is a professor whose reviews need collecting, with the
// stored high-watermark attached. A zero Watermark means the professor
// has never been collected.
type Candidate struct {
	Card      ProfessorCard
	Watermark time.Time
}

// SelectProfessorsToScrape compares the listing against the stored
// signals. A professor whose rating count is unchanged has no new
// reviews and is skipped; a changed count or an unknown name becomes a
// candidate.
func SelectProfessorsToScrape(cards []ProfessorCard, signals map[string]ragstore.ProfessorSignal) []Candidate {
	var candidates []Candidate
	for _, card := range cards {
		signal, known := signals[card.Name]
		if !known {
			candidates = append(candidates, Candidate{Card: card})
			continue
		}
		if card.NumRatings == signal.NumRatings {
			continue
		}
		candidates = append(candidates, Candidate{Card: card, Watermark: signal.LatestCommentDate})
	}
	return candidates
}

const minCommentLength = 10

// ReconcileReviews turns the raw review blocks of one profile page into
// chunks. Blocks arrive newest first; the walk stops at the first block
// dated at or before the candidate's watermark, since everything past
// it is already stored. Ratings missing from a block fall back to the
// professor's page-level numbers. Repeats of a (text, date) pair within
// the page or already present in existingKeys are dropped.
func ReconcileReviews(
	candidate Candidate,
	summary ProfessorSummary,
	blocks []ReviewBlock,
	courseMapping map[string]string,
	existingKeys map[ragstore.ChunkKey]struct{},
) (chunks []ragstore.Chunk, stopped bool) {
	seen := map[ragstore.ChunkKey]struct{}{}

	for _, block := range blocks {
		if !candidate.Watermark.IsZero() && !block.Date.After(candidate.Watermark) {
			return chunks, true
		}
		if len(block.Comment) < minCommentLength {
			continue
		}

		courseCode := courseMapping[block.CourseCode]
		if courseCode == "" {
			courseCode = ragstore.GeneralCourse
		}

		quality := block.Quality
		if !quality.Valid {
			quality = summary.OverallRating
		}
		difficulty := block.Difficulty
		if !difficulty.Valid {
			difficulty = summary.LevelOfDifficulty
		}

		score, label := classify.Sentiment(block.Comment)
		chunk := ragstore.Chunk{
			Text:             block.Comment,
			Source:           ragstore.SourceRateMyProfessors,
			CourseCode:       courseCode,
			ProfessorName:    candidate.Card.Name,
			SourceURL:        candidate.Card.URL,
			Tags:             block.Tags,
			SentimentScore:   score,
			SentimentLabel:   label,
			CreatedAt:        block.Date,
			QualityRating:    quality,
			DifficultyRating: difficulty,
		}

		key := chunk.Key()
		if _, dup := existingKeys[key]; dup {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		chunks = append(chunks, chunk)
	}
	return chunks, false
}

// UpdatedProfessor builds the professor record to upsert after a
// collection pass. The watermark advances to the newest collected
// review; when the pass yielded nothing it keeps the previous value, so
// an empty or failed page never rewinds incremental state.
func UpdatedProfessor(candidate Candidate, summary ProfessorSummary, chunks []ragstore.Chunk) ragstore.Professor {
	watermark := candidate.Watermark
	for _, chunk := range chunks {
		if chunk.CreatedAt.After(watermark) {
			watermark = chunk.CreatedAt
		}
	}
	return ragstore.Professor{
		ID:                candidate.Card.ID,
		Name:              candidate.Card.Name,
		OverallRating:     summary.OverallRating,
		PercentRetake:     summary.PercentRetake,
		LevelOfDifficulty: summary.LevelOfDifficulty,
		Tags:              summary.Tags,
		LatestCommentDate: watermark,
		NumRatings:        candidate.Card.NumRatings,
		URL:               candidate.Card.URL,
	}
}
