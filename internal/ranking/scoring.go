// Package ranking computes relevance scores for study programs against a user
// preference profile and provides the sorting and filtering used by the
// recommendation results view.
package ranking

import (
	"strings"
	"unicode"

	"github.com/dovydas-v/uniguide/internal/types"
)

// Point values for the scoring rules. The score is an additive heuristic, not
// a normalized metric: every rule contributes independently and the sum is
// never clamped.
const (
	baseScore          = 50.0
	ratingWeight       = 5.0
	fieldMatchBonus    = 10.0
	locationBonus      = 15.0
	sizeBonus          = 20.0
	difficultyBonus    = 15.0
	careerKeywordBonus = 5.0
	housingBonus       = 10.0
	searchTokenBonus   = 8.0

	dormitoryRatingThreshold = 3.5
)

// Score computes the relevance score of a single program against the user's
// preferences. It is pure and total: sparse records never panic, every rule
// with a missing input simply contributes zero.
func Score(program *types.Program, prefs *types.Preferences) float64 {
	if program == nil || prefs == nil {
		return 0
	}

	description := strings.ToLower(PlainText(program.Description))

	score := baseScore
	score += program.Rating * ratingWeight
	score += fieldOfStudyScore(program.Title, prefs.Academic.FieldOfStudy)
	score += locationScore(program.University, prefs.Academic.Locations)
	score += programSizeScore(program.StudentCount, prefs.ProgramSize)
	score += difficultyScore(program.Difficulty(), prefs.Study.DifficultyLevel)
	score += careerGoalScore(description, prefs.CareerGoals)
	score += housingScore(program.University, prefs.Housing)
	score += keywordSearchScore(description, prefs.KeywordSearch)
	return score
}

// fieldOfStudyScore awards a bonus per selected field whose name appears in
// the program title, case-insensitively. Matches are cumulative.
func fieldOfStudyScore(title string, fields []string) float64 {
	if title == "" || len(fields) == 0 {
		return 0
	}
	titleLower := strings.ToLower(title)
	score := 0.0
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(titleLower, strings.ToLower(field)) {
			score += fieldMatchBonus
		}
	}
	return score
}

// locationScore awards a bonus when the university location is an exact,
// case-sensitive member of the preferred locations.
func locationScore(university *types.University, locations []string) float64 {
	if university == nil || university.Location == "" {
		return 0
	}
	for _, loc := range locations {
		if loc == university.Location {
			return locationBonus
		}
	}
	return 0
}

// programSizeScore awards a bonus when the extracted student count falls in
// the preferred band. There is no penalty for a mismatch and no contribution
// when the user expressed no size preference.
func programSizeScore(count types.StudentCount, size types.ProgramSize) float64 {
	if size == types.SizeNone {
		return 0
	}
	n, _ := ParseStudentCount(count)
	if sizeBandMatches(n, size) {
		return sizeBonus
	}
	return 0
}

// difficultyScore awards a bonus when the program difficulty agrees with the
// user's 0-100 difficulty slider. The three bands deliberately overlap
// (difficulty 3 satisfies both the low and the high branch); the behavior is
// kept as shipped.
func difficultyScore(difficulty int, level float64) float64 {
	d := level
	if d < 0 {
		d = 0
	}
	if d > 100 {
		d = 100
	}
	switch {
	case d < 30 && difficulty <= 3:
		return difficultyBonus
	case d > 70 && difficulty >= 3:
		return difficultyBonus
	case d >= 30 && d <= 70 && difficulty >= 2 && difficulty <= 4:
		return difficultyBonus
	default:
		return 0
	}
}

// careerGoalScore counts occurrences of each keyword associated with the
// selected career goals inside the description. Every occurrence counts, so
// the contribution is unbounded.
func careerGoalScore(descriptionLower string, goals []string) float64 {
	if descriptionLower == "" || len(goals) == 0 {
		return 0
	}
	score := 0.0
	for _, goal := range goals {
		for _, keyword := range CareerGoalKeywords(goal) {
			occurrences := strings.Count(descriptionLower, strings.ToLower(keyword))
			score += float64(occurrences) * careerKeywordBonus
		}
	}
	return score
}

// housingScore awards a bonus when dormitories matter to the user and the
// university's dormitories are rated well enough.
func housingScore(university *types.University, housing types.HousingPreferences) float64 {
	if !housing.DormitoryImportant || university == nil {
		return 0
	}
	if university.DormitoriesRating >= dormitoryRatingThreshold {
		return housingBonus
	}
	return 0
}

// keywordSearchScore awards a bonus per free-text search token found in the
// description. Tokens split on commas and whitespace; presence counts once
// per token.
func keywordSearchScore(descriptionLower, search string) float64 {
	if descriptionLower == "" || strings.TrimSpace(search) == "" {
		return 0
	}
	tokens := strings.FieldsFunc(search, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	score := 0.0
	for _, token := range tokens {
		if strings.Contains(descriptionLower, strings.ToLower(token)) {
			score += searchTokenBonus
		}
	}
	return score
}
