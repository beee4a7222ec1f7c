package ranking

import (
	"sort"

	"github.com/dovydas-v/uniguide/internal/types"
)

// Rank attaches a relevance score to every program and returns a new slice
// sorted descending by score. The sort is stable, so programs with equal
// scores keep the order the provider returned them in.
//
// When prefs is nil the provider order is kept and every score is zeroed;
// a reloaded results page without a submitted form must still render.
func Rank(programs []*types.Program, prefs *types.Preferences) []*types.Program {
	ranked := make([]*types.Program, len(programs))
	copy(ranked, programs)

	if prefs == nil {
		for _, p := range ranked {
			if p != nil {
				p.RelevanceScore = 0
			}
		}
		return ranked
	}

	for _, p := range ranked {
		if p != nil {
			p.RelevanceScore = Score(p, prefs)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return relevanceOf(ranked[i]) > relevanceOf(ranked[j])
	})
	return ranked
}

func relevanceOf(p *types.Program) float64 {
	if p == nil {
		return 0
	}
	return p.RelevanceScore
}
