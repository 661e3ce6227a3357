package rmp

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var (
	leadingLettersRegex = regexp.MustCompile(`^[A-Z]+`)
	digitRunRegex       = regexp.MustCompile(`\d+`)
)

// digitChunks splits every digit run of s into consecutive 3-character
// course numbers. "121124" yields 121 and 124; a trailing short chunk
// is kept as-is and simply won't match anything.
func digitChunks(s string) []string {
	var chunks []string
	for _, run := range digitRunRegex.FindAllString(s, -1) {
		for idx := 0; idx < len(run); idx += 3 {
			end := min(idx+3, len(run))
			chunks = append(chunks, run[idx:end])
		}
	}
	return chunks
}

// CleanAndMapCourseCodes maps the messy course labels a review page
// carries ("CISC121", "cisc 121/124", "121") onto canonical catalog
// codes. The first pass derives, from the whole label set at once, the
// department prefixes and course numbers that this professor's pages
// can legitimately refer to; the second pass resolves each label
// against that derived vocabulary. A label maps only when it resolves
// to exactly one candidate; anything ambiguous maps to "" and the
// caller falls back to the sentinel.
func CleanAndMapCourseCodes(rawCodes []string, validCourses map[string]struct{}) map[string]string {
	validNoSpace := make(map[string]string, len(validCourses))
	for course := range validCourses {
		validNoSpace[strings.ToUpper(strings.ReplaceAll(course, " ", ""))] = course
	}

	// first pass, stage one: collect every department prefix the label
	// set mentions. This must complete before any number pairing so a
	// bare number in an early label can pair with a prefix that only a
	// later label introduces.
	deptCodes := map[string]struct{}{}
	for _, raw := range rawCodes {
		cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
		prefix := leadingLettersRegex.FindString(cleaned)
		if prefix == "" {
			continue
		}
		for noSpace := range validNoSpace {
			if strings.HasPrefix(noSpace, prefix) {
				deptCodes[prefix] = struct{}{}
				break
			}
		}
	}

	// first pass, stage two: pair every course number with every known
	// prefix to derive the codes this label set can resolve to.
	numCodes := map[string]struct{}{}
	derived := map[string]struct{}{}
	for _, raw := range rawCodes {
		cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
		for _, num := range digitChunks(cleaned) {
			if len(num) != 3 {
				continue
			}
			for dept := range deptCodes {
				candidate := dept + " " + num
				if _, ok := validCourses[candidate]; ok {
					numCodes[num] = struct{}{}
					derived[candidate] = struct{}{}
				}
			}
		}
	}

	// second pass: resolve each label.
	mapping := make(map[string]string, len(rawCodes))
	for _, raw := range rawCodes {
		mapping[raw] = resolveLabel(raw, validNoSpace, deptCodes, numCodes, derived)
		if mapping[raw] == "" {
			logUnmappedLabel(raw, validCourses)
		}
	}
	return mapping
}

func resolveLabel(
	raw string,
	validNoSpace map[string]string,
	deptCodes, numCodes, derived map[string]struct{},
) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))

	if canonical, ok := validNoSpace[cleaned]; ok {
		return canonical
	}

	prefix := leadingLettersRegex.FindString(cleaned)
	chunks := digitChunks(cleaned)

	matches := map[string]struct{}{}
	switch {
	case prefix != "" && len(chunks) > 0:
		for _, num := range chunks {
			for dept := range deptCodes {
				candidate := dept + " " + num
				if _, ok := derived[candidate]; ok {
					matches[candidate] = struct{}{}
				}
			}
		}

	case prefix == "" && len(cleaned) == 3 && len(chunks) == 1 && chunks[0] == cleaned:
		// a bare course number pairs with the derived prefixes
		if _, known := numCodes[cleaned]; known {
			for dept := range deptCodes {
				candidate := dept + " " + cleaned
				if _, ok := derived[candidate]; ok {
					matches[candidate] = struct{}{}
				}
			}
		}

	default:
		// letters only ("ANAT") or anything else unrecognizable
		return ""
	}

	if len(matches) != 1 {
		return ""
	}
	for match := range matches {
		return match
	}
	return ""
}

// logUnmappedLabel records the nearest canonical code of an unmapped
// label so recurring near-misses show up in the logs.
func logUnmappedLabel(raw string, validCourses map[string]struct{}) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	best := ""
	bestScore := 0.0
	for course := range validCourses {
		score := matchr.JaroWinkler(upper, course, true)
		if score > bestScore {
			bestScore = score
			best = course
		}
	}
	if best != "" && bestScore >= 0.85 {
		slog.Debug("course label unmapped", "label", raw, "nearest", best)
	} else {
		slog.Debug("course label unmapped", "label", raw)
	}
}
