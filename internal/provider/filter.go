package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/dovydas-v/uniguide/internal/types"
)

// FilterProvider selects programs by applying the hard filters from the
// preference profile. Programs satisfying every filter land in the strict
// pool; programs failing exactly one non-degree filter are offered as relaxed
// alternatives. Ranking hints (size, difficulty) are never filtered on.
type FilterProvider struct {
	source ProgramSource
}

// NewFilterProvider creates a deterministic provider over a program source.
func NewFilterProvider(source ProgramSource) *FilterProvider {
	return &FilterProvider{source: source}
}

// Recommend applies the hard filters to the candidate catalog.
func (p *FilterProvider) Recommend(ctx context.Context, prefs *types.Preferences) (*types.RecommendationResponse, error) {
	if prefs == nil {
		return nil, fmt.Errorf("preferences are required")
	}

	candidates, err := p.source.ListCandidatePrograms(ctx, prefs.Academic.DegreeType)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate programs: %w", err)
	}

	resp := &types.RecommendationResponse{
		StrictPrograms:  []*types.Program{},
		RelaxedPrograms: []*types.Program{},
	}
	for _, program := range candidates {
		if program == nil {
			continue
		}
		// Degree type is non-negotiable; everything else can be relaxed.
		if prefs.Academic.DegreeType != "" && program.DegreeType != prefs.Academic.DegreeType {
			continue
		}
		switch countFailedFilters(program, prefs) {
		case 0:
			resp.StrictPrograms = append(resp.StrictPrograms, program)
		case 1:
			resp.RelaxedPrograms = append(resp.RelaxedPrograms, program)
		}
	}
	return resp, nil
}

// countFailedFilters counts how many hard filters a program fails.
func countFailedFilters(program *types.Program, prefs *types.Preferences) int {
	failed := 0
	if !matchesLocation(program, prefs.Academic.Locations) {
		failed++
	}
	if prefs.Academic.MinRating > 0 && program.Rating < prefs.Academic.MinRating {
		failed++
	}
	if !matchesFinancials(program, prefs.Financial) {
		failed++
	}
	if !matchesFieldOfStudy(program, prefs.Academic.FieldOfStudy) {
		failed++
	}
	return failed
}

func matchesLocation(program *types.Program, locations []string) bool {
	if len(locations) == 0 {
		return true
	}
	if program.University == nil {
		return false
	}
	for _, loc := range locations {
		if loc == program.University.Location {
			return true
		}
	}
	return false
}

func matchesFinancials(program *types.Program, financial types.FinancialFactors) bool {
	if financial.StateFinanced && !program.StateFinanced {
		return false
	}
	if financial.MaxYearlyCost > 0 && !program.StateFinanced && program.YearlyCost > financial.MaxYearlyCost {
		return false
	}
	return true
}

func matchesFieldOfStudy(program *types.Program, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	title := strings.ToLower(program.Title)
	faculty := strings.ToLower(program.FacultyName())
	for _, field := range fields {
		needle := strings.ToLower(field)
		if needle == "" {
			continue
		}
		if strings.Contains(title, needle) || strings.Contains(faculty, needle) {
			return true
		}
	}
	return false
}
