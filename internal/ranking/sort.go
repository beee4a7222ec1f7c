package ranking

import (
	"sort"
	"strings"

	"github.com/dovydas-v/uniguide/internal/types"
)

// SortField names a sortable program attribute. The string values mirror the
// sort-key vocabulary the results view has always used, including the dotted
// "university.name" key, but each key maps to a typed accessor instead of
// being resolved by splitting the string at runtime.
type SortField string

// Sortable fields.
const (
	SortRelevance      SortField = "relevance"
	SortTitle          SortField = "title"
	SortRating         SortField = "rating"
	SortUniversityName SortField = "university.name"
	SortDegreeType     SortField = "degree_type"
	SortDifficulty     SortField = "difficulty_rating"
)

// SortOrder is the sort direction.
type SortOrder string

// Sort directions.
const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortField maps an external sort key to a SortField, falling back to
// relevance for anything unknown.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortTitle, SortRating, SortUniversityName, SortDegreeType, SortDifficulty:
		return SortField(s)
	default:
		return SortRelevance
	}
}

// ParseSortOrder maps an external direction to a SortOrder, defaulting to
// descending (the initial relevance ordering).
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == Ascending {
		return Ascending
	}
	return Descending
}

// SortPrograms returns a new slice sorted by the given field and direction.
// The input is never mutated. Numeric fields compare numerically with missing
// values as zero; string fields compare lexicographically.
func SortPrograms(programs []*types.Program, field SortField, order SortOrder) []*types.Program {
	sorted := make([]*types.Program, len(programs))
	copy(sorted, programs)

	less := lessFunc(field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == Ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}

// lessFunc returns the ascending comparator for a field.
func lessFunc(field SortField) func(a, b *types.Program) bool {
	switch field {
	case SortTitle:
		return stringLess(func(p *types.Program) string { return p.Title })
	case SortUniversityName:
		return stringLess(func(p *types.Program) string { return p.UniversityName() })
	case SortDegreeType:
		return stringLess(func(p *types.Program) string { return string(p.DegreeType) })
	case SortRating:
		return numericLess(func(p *types.Program) float64 { return p.Rating })
	case SortDifficulty:
		return numericLess(func(p *types.Program) float64 { return float64(p.Difficulty()) })
	default:
		return numericLess(relevanceOf)
	}
}

func stringLess(key func(*types.Program) string) func(a, b *types.Program) bool {
	return func(a, b *types.Program) bool {
		return strings.Compare(safeString(a, key), safeString(b, key)) < 0
	}
}

func numericLess(key func(*types.Program) float64) func(a, b *types.Program) bool {
	return func(a, b *types.Program) bool {
		return safeNumber(a, key) < safeNumber(b, key)
	}
}

func safeString(p *types.Program, key func(*types.Program) string) string {
	if p == nil {
		return ""
	}
	return key(p)
}

func safeNumber(p *types.Program, key func(*types.Program) float64) float64 {
	if p == nil {
		return 0
	}
	return key(p)
}
