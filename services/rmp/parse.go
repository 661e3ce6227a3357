package rmp

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"coursecentral-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// The review site is a client-rendered react app; these are the
// generated styled-component class names its markup carries. They are
// stable across deploys but will need updating if the site ships a
// redesign.
const (
	cardSelector             = "a.TeacherCard__StyledTeacherCard-syjs0d-0"
	cardNameSelector         = "div.CardName__StyledCardName-sc-1gyrgim-0"
	cardDepartmentSelector   = "div.CardSchool__Department-sc-19lmz2k-0"
	cardNumRatingsSelector   = "div.CardNumRating__CardNumRatingCount-sc-17t4b9u-3"
	overallRatingSelector    = "div.RatingValue__Numerator-qw8sqy-2"
	feedbackNumberSelector   = "div.FeedbackItem__FeedbackNumber-uof32n-1"
	profTagSelector          = "div.TeacherTags__TagsContainer-sc-16vmh1y-0 span.Tag-bs9vf4-0"
	ratingsListSelector      = "ul#ratingsList > li"
	ratingDivSelector        = "div.Rating__StyledRating-sc-1rhvpxz-1"
	reviewDateSelector       = "div.TimeStamp__StyledTimeStamp-sc-9q2r30-0"
	reviewCourseSelector     = "div.RatingHeader__StyledClass-sc-1dlkqw1-3"
	reviewQualitySelector    = "div.CardNumRating__CardNumRatingNumber-sc-17t4b9u-2.ERCLc"
	reviewDifficultySelector = "div.CardNumRating__CardNumRatingNumber-sc-17t4b9u-2.eBKGNg"
	reviewCommentSelector    = "div.Comments__StyledComments-dzzyvm-0"
	reviewTagSelector        = "span.Tag-bs9vf4-0"
)

// ProfessorCard is one entry on the school listing page.
type ProfessorCard struct {
	ID         string
	Name       string
	Department string
	NumRatings int64
	URL        string
}

// ProfessorSummary is the header section of a profile page.
type ProfessorSummary struct {
	OverallRating     sql.NullFloat64
	PercentRetake     sql.NullFloat64
	LevelOfDifficulty sql.NullFloat64
	Tags              []string
}

// ReviewBlock is one raw review as it appears on a profile page, before
// reconciliation against the store.
type ReviewBlock struct {
	Date       time.Time
	CourseCode string
	Quality    sql.NullFloat64
	Difficulty sql.NullFloat64
	Comment    string
	Tags       []string
}

var ordinalSuffixRegex = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

const reviewDateLayout = "Jan 2, 2006"

func parseNullFloat(text string) sql.NullFloat64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// ParseProfessorCards reads every professor card off the listing page.
// Malformed cards are skipped. Cards sharing an id keep the first
// occurrence.
func ParseProfessorCards(doc *goquery.Document, baseURL string) []ProfessorCard {
	var cards []ProfessorCard
	seen := map[string]struct{}{}

	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Attr("href")
		if !ok {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = baseURL + href
		}
		id := trailingSlug(href)
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}

		name := htmlutil.CleanInline(card.Find(cardNameSelector).First().Text())
		if name == "" {
			return
		}

		// rendered as "1,234 ratings"
		countText := htmlutil.CleanInline(card.Find(cardNumRatingsSelector).First().Text())
		fields := strings.Fields(countText)
		if len(fields) == 0 {
			return
		}
		numRatings, err := strconv.ParseInt(strings.ReplaceAll(fields[0], ",", ""), 10, 64)
		if err != nil {
			return
		}

		seen[id] = struct{}{}
		cards = append(cards, ProfessorCard{
			ID:         id,
			Name:       name,
			Department: htmlutil.CleanInline(card.Find(cardDepartmentSelector).First().Text()),
			NumRatings: numRatings,
			URL:        href,
		})
	})
	return cards
}

func trailingSlug(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}
	return trimmed[idx+1:]
}

// ParseProfessorSummary reads the header metrics of a profile page. A
// professor with zero ratings legitimately has no numbers, so hasReviews
// gates them rather than failing the parse.
func ParseProfessorSummary(doc *goquery.Document, hasReviews bool) ProfessorSummary {
	var summary ProfessorSummary
	if hasReviews {
		summary.OverallRating = parseNullFloat(doc.Find(overallRatingSelector).First().Text())

		feedback := doc.Find(feedbackNumberSelector)
		if feedback.Length() > 0 {
			summary.PercentRetake = parseNullFloat(strings.TrimSuffix(
				htmlutil.CleanInline(feedback.Eq(0).Text()), "%"))
		}
		if feedback.Length() > 1 {
			summary.LevelOfDifficulty = parseNullFloat(feedback.Eq(1).Text())
		}
	}
	doc.Find(profTagSelector).Each(func(_ int, tag *goquery.Selection) {
		summary.Tags = append(summary.Tags, htmlutil.CleanInline(tag.Text()))
	})
	return summary
}

var reviewCountSuffixRegex = regexp.MustCompile(`\(\d+\)`)

// ParseCourseOptions extracts the course labels the professor has been
// reviewed under from the course-filter dropdown, stripping the per-
// course review counts and the "all courses" entry.
func ParseCourseOptions(options []string) []string {
	seen := map[string]struct{}{}
	var courses []string
	for _, option := range options {
		cleaned := strings.TrimSpace(reviewCountSuffixRegex.ReplaceAllString(option, ""))
		if cleaned == "" || strings.EqualFold(cleaned, "all courses") {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		courses = append(courses, cleaned)
	}
	return courses
}

// CourseOptionsFromPage reads the course-filter dropdown entries off a
// rendered profile page. The page dump has the menu expanded.
func CourseOptionsFromPage(doc *goquery.Document) []string {
	var options []string
	doc.Find("div.css-1ogydhz-menu div").Each(func(_ int, opt *goquery.Selection) {
		if opt.Children().Length() == 0 {
			options = append(options, htmlutil.CleanInline(opt.Text()))
		}
	})
	return ParseCourseOptions(options)
}

// ParseReviewBlocks reads the review list of a profile page in page
// order, which the site renders newest first. Ad slots (list items with
// no rating body) are skipped; a block with an unparseable date is an
// error entry so callers can count it without losing the rest.
func ParseReviewBlocks(doc *goquery.Document) ([]ReviewBlock, []error) {
	var blocks []ReviewBlock
	var errs []error

	doc.Find(ratingsListSelector).Each(func(i int, item *goquery.Selection) {
		rating := item.Find(ratingDivSelector).First()
		if rating.Length() == 0 {
			return
		}

		rawDate := htmlutil.CleanInline(item.Find(reviewDateSelector).First().Text())
		cleanDate := ordinalSuffixRegex.ReplaceAllString(rawDate, "$1")
		date, err := time.Parse(reviewDateLayout, cleanDate)
		if err != nil {
			errs = append(errs, fmt.Errorf("review %d: bad date %q: %w", i, rawDate, err))
			return
		}

		var tags []string
		item.Find(reviewTagSelector).Each(func(_ int, tag *goquery.Selection) {
			tags = append(tags, htmlutil.CleanInline(tag.Text()))
		})

		blocks = append(blocks, ReviewBlock{
			Date:       date,
			CourseCode: htmlutil.CleanInline(item.Find(reviewCourseSelector).First().Text()),
			Quality:    parseNullFloat(item.Find(reviewQualitySelector).First().Text()),
			Difficulty: parseNullFloat(item.Find(reviewDifficultySelector).First().Text()),
			Comment:    strings.TrimSpace(item.Find(reviewCommentSelector).First().Text()),
			Tags:       tags,
		})
	})
	return blocks, errs
}
