package results

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dovydas-v/uniguide/internal/ranking"
	"github.com/dovydas-v/uniguide/internal/types"
)

func program(title string, rating float64) *types.Program {
	return &types.Program{ID: uuid.New(), Title: title, Rating: rating}
}

func response(strict, relaxed []*types.Program) *types.RecommendationResponse {
	return &types.RecommendationResponse{StrictPrograms: strict, RelaxedPrograms: relaxed}
}

func titles(page Page) []string {
	out := make([]string, len(page.Programs))
	for i, p := range page.Programs {
		out[i] = p.Title
	}
	return out
}

func TestController_StartsLoading(t *testing.T) {
	c := NewController(&types.Preferences{})
	assert.Equal(t, StateLoading, c.State())
}

func TestController_ReadyAfterResponse(t *testing.T) {
	c := NewController(&types.Preferences{})
	c.SetResponse(response([]*types.Program{program("Informatika", 4)}, nil))

	assert.Equal(t, StateReady, c.State())
	assert.False(t, c.HasRelaxed())
}

func TestController_EmptyPoolsIsEmptyStateNotError(t *testing.T) {
	c := NewController(&types.Preferences{})
	c.SetResponse(response(nil, nil))

	assert.Equal(t, StateEmpty, c.State())
	assert.NoError(t, c.Err())
}

func TestController_ErrorState(t *testing.T) {
	c := NewController(&types.Preferences{})
	c.SetError(errors.New("provider unreachable"))

	assert.Equal(t, StateError, c.State())
	assert.EqualError(t, c.Err(), "provider unreachable")
}

func TestController_ResponseAfterCloseIsDiscarded(t *testing.T) {
	c := NewController(&types.Preferences{})
	c.Close()
	c.SetResponse(response([]*types.Program{program("Informatika", 4)}, nil))

	assert.Equal(t, StateLoading, c.State())
}

func TestController_NilPreferencesKeepsProviderOrder(t *testing.T) {
	c := NewController(nil)
	c.SetResponse(response([]*types.Program{
		program("second by rating", 2),
		program("first by rating", 5),
	}, nil))

	page := c.Visible()
	require.Equal(t, StateReady, c.State())
	assert.Equal(t, []string{"second by rating", "first by rating"}, titles(page))
	for _, p := range page.Programs {
		assert.Zero(t, p.RelevanceScore)
	}
}

func TestController_InitialOrderIsRelevanceDescending(t *testing.T) {
	prefs := &types.Preferences{
		Academic: types.AcademicPreferences{FieldOfStudy: []string{"Informatika"}},
	}
	c := NewController(prefs)
	c.SetResponse(response([]*types.Program{
		program("Teisė", 3),
		program("Informatika", 3),
	}, nil))

	assert.Equal(t, []string{"Informatika", "Teisė"}, titles(c.Visible()))
}

func TestController_ResortTouchesActivePoolOnly(t *testing.T) {
	c := NewController(&types.Preferences{})
	c.SetResponse(response(
		[]*types.Program{program("B strict", 1), program("A strict", 2)},
		[]*types.Program{program("B relaxed", 1), program("A relaxed", 2)},
	))

	c.Resort(ranking.SortTitle, ranking.Ascending)

	view := c.View()
	assert.Equal(t, ranking.SortTitle, view.Strict.SortField)
	assert.Equal(t, ranking.SortRelevance, view.Relaxed.SortField)

	// The relaxed pool still shows its relevance ordering.
	c.SwitchTab(TabRelaxed)
	assert.Equal(t, []string{"A relaxed", "B relaxed"}, titles(c.Visible()))
}

func TestController_SearchStatePerPool(t *testing.T) {
	c := NewController(&types.Preferences{})
	c.SetResponse(response(
		[]*types.Program{program("KTU Informatika", 4), program("VU Teisė", 4)},
		[]*types.Program{program("VDU Ekonomika", 4)},
	))

	c.Search("ktu")
	assert.Equal(t, []string{"KTU Informatika"}, titles(c.Visible()))

	c.SwitchTab(TabRelaxed)
	assert.Equal(t, "", c.View().Relaxed.Search)
	assert.Equal(t, []string{"VDU Ekonomika"}, titles(c.Visible()))

	c.SwitchTab(TabStrict)
	assert.Equal(t, "ktu", c.View().Strict.Search)
}

func TestController_SwitchToHiddenRelaxedTabIsNoop(t *testing.T) {
	c := NewController(&types.Preferences{})
	c.SetResponse(response([]*types.Program{program("Informatika", 4)}, nil))

	c.SwitchTab(TabRelaxed)

	assert.Equal(t, TabStrict, c.View().ActiveTab)
}

func TestController_ToggleRow(t *testing.T) {
	c := NewController(&types.Preferences{})
	first := uuid.New()
	second := uuid.New()

	c.ToggleRow(first)
	assert.True(t, c.Expanded(first))
	assert.False(t, c.Expanded(second))

	c.ToggleRow(second)
	c.ToggleRow(first)
	assert.False(t, c.Expanded(first))
	assert.True(t, c.Expanded(second))
}

func TestController_Pagination(t *testing.T) {
	programs := make([]*types.Program, 25)
	for i := range programs {
		programs[i] = program(string(rune('a'+i)), 3)
	}
	c := NewController(nil)
	c.SetResponse(response(programs, nil))

	first := c.Visible()
	assert.Len(t, first.Programs, DefaultPageSize)
	assert.Equal(t, 25, first.Total)

	c.SetPage(3)
	last := c.Visible()
	assert.Len(t, last.Programs, 5)

	c.SetPage(99)
	assert.Empty(t, c.Visible().Programs)
}

func TestController_ResortResetsPage(t *testing.T) {
	programs := make([]*types.Program, 15)
	for i := range programs {
		programs[i] = program(string(rune('a'+i)), 3)
	}
	c := NewController(nil)
	c.SetResponse(response(programs, nil))

	c.SetPage(2)
	c.Resort(ranking.SortTitle, ranking.Ascending)

	assert.Equal(t, 1, c.Visible().Page)
}
