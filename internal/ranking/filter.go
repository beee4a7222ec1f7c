package ranking

import (
	"strings"

	"github.com/dovydas-v/uniguide/internal/types"
)

// FilterPrograms returns the programs whose title, university name or faculty
// name contains the search term, case-insensitively. A blank or
// whitespace-only term returns the input unchanged.
func FilterPrograms(programs []*types.Program, term string) []*types.Program {
	term = strings.TrimSpace(term)
	if term == "" {
		return programs
	}
	needle := strings.ToLower(term)

	filtered := make([]*types.Program, 0, len(programs))
	for _, p := range programs {
		if p == nil {
			continue
		}
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.UniversityName()), needle) ||
			strings.Contains(strings.ToLower(p.FacultyName()), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
