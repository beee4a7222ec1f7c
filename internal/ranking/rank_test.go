package ranking

import (
	"testing"

	"github.com/dovydas-v/uniguide/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_SortsDescendingByScore(t *testing.T) {
	prefs := &types.Preferences{
		Academic: types.AcademicPreferences{FieldOfStudy: []string{"Informatika"}},
	}
	programs := []*types.Program{
		{Title: "Teisė", Rating: 2},
		{Title: "Informatika", Rating: 5},
		{Title: "Ekonomika", Rating: 3},
	}

	ranked := Rank(programs, prefs)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Informatika", ranked[0].Title)
	assert.GreaterOrEqual(t, ranked[0].RelevanceScore, ranked[1].RelevanceScore)
	assert.GreaterOrEqual(t, ranked[1].RelevanceScore, ranked[2].RelevanceScore)
	// Input slice order is preserved.
	assert.Equal(t, "Teisė", programs[0].Title)
}

func TestRank_TiesKeepProviderOrder(t *testing.T) {
	prefs := &types.Preferences{}
	programs := []*types.Program{
		{Title: "first", Rating: 4},
		{Title: "second", Rating: 4},
		{Title: "third", Rating: 4},
	}

	ranked := Rank(programs, prefs)

	assert.Equal(t, []string{"first", "second", "third"}, titlesOf(ranked))
}

func TestRank_NilPreferencesKeepsProviderOrderAndZeroesScores(t *testing.T) {
	programs := []*types.Program{
		{Title: "b", Rating: 1, RelevanceScore: 99},
		{Title: "a", Rating: 5, RelevanceScore: 12},
	}

	ranked := Rank(programs, nil)

	assert.Equal(t, []string{"b", "a"}, titlesOf(ranked))
	for _, p := range ranked {
		assert.Zero(t, p.RelevanceScore)
	}
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, &types.Preferences{}))
}
