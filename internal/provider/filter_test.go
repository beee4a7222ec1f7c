package provider

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dovydas-v/uniguide/internal/types"
)

type stubSource struct {
	programs []*types.Program
	err      error
}

func (s *stubSource) ListCandidatePrograms(_ context.Context, _ types.DegreeType) ([]*types.Program, error) {
	return s.programs, s.err
}

func catalogProgram(title, location string, rating float64, degree types.DegreeType) *types.Program {
	return &types.Program{
		ID:         uuid.New(),
		Title:      title,
		Rating:     rating,
		DegreeType: degree,
		University: &types.University{Name: "U", Location: location},
	}
}

func TestFilterProvider_SplitsStrictAndRelaxed(t *testing.T) {
	full := catalogProgram("Informatika", "Vilnius", 4.5, types.DegreeBachelor)
	wrongCity := catalogProgram("Informatika", "Kaunas", 4.5, types.DegreeBachelor)
	wrongCityAndRating := catalogProgram("Informatika", "Kaunas", 2.0, types.DegreeBachelor)
	wrongDegree := catalogProgram("Informatika", "Vilnius", 4.5, types.DegreeMaster)

	p := NewFilterProvider(&stubSource{
		programs: []*types.Program{full, wrongCity, wrongCityAndRating, wrongDegree},
	})
	resp, err := p.Recommend(context.Background(), &types.Preferences{
		Academic: types.AcademicPreferences{
			DegreeType:   types.DegreeBachelor,
			FieldOfStudy: []string{"informatika"},
			Locations:    []string{"Vilnius"},
			MinRating:    4,
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.StrictPrograms, 1)
	assert.Equal(t, full.ID, resp.StrictPrograms[0].ID)
	require.Len(t, resp.RelaxedPrograms, 1)
	assert.Equal(t, wrongCity.ID, resp.RelaxedPrograms[0].ID)
}

func TestFilterProvider_NoFiltersMeansEverythingStrict(t *testing.T) {
	p := NewFilterProvider(&stubSource{programs: []*types.Program{
		catalogProgram("A", "Vilnius", 3, types.DegreeBachelor),
		catalogProgram("B", "Kaunas", 2, types.DegreeMaster),
	}})

	resp, err := p.Recommend(context.Background(), &types.Preferences{})

	require.NoError(t, err)
	assert.Len(t, resp.StrictPrograms, 2)
	assert.Empty(t, resp.RelaxedPrograms)
}

func TestFilterProvider_StateFinancingFilter(t *testing.T) {
	financed := catalogProgram("Informatika", "Vilnius", 4, types.DegreeBachelor)
	financed.StateFinanced = true
	paid := catalogProgram("Informatika", "Vilnius", 4, types.DegreeBachelor)
	paid.YearlyCost = 5000

	p := NewFilterProvider(&stubSource{programs: []*types.Program{financed, paid}})
	resp, err := p.Recommend(context.Background(), &types.Preferences{
		Financial: types.FinancialFactors{StateFinanced: true},
	})

	require.NoError(t, err)
	require.Len(t, resp.StrictPrograms, 1)
	assert.Equal(t, financed.ID, resp.StrictPrograms[0].ID)
	// The paid program failed only the financing filter, so it is offered
	// as an alternative.
	require.Len(t, resp.RelaxedPrograms, 1)
	assert.Equal(t, paid.ID, resp.RelaxedPrograms[0].ID)
}

func TestFilterProvider_MaxYearlyCostIgnoredForStateFinanced(t *testing.T) {
	financed := catalogProgram("Informatika", "Vilnius", 4, types.DegreeBachelor)
	financed.StateFinanced = true
	expensive := catalogProgram("Informatika", "Vilnius", 4, types.DegreeBachelor)
	expensive.YearlyCost = 9000

	p := NewFilterProvider(&stubSource{programs: []*types.Program{financed, expensive}})
	resp, err := p.Recommend(context.Background(), &types.Preferences{
		Financial: types.FinancialFactors{MaxYearlyCost: 4000},
	})

	require.NoError(t, err)
	require.Len(t, resp.StrictPrograms, 1)
	assert.Equal(t, financed.ID, resp.StrictPrograms[0].ID)
}

func TestFilterProvider_FieldMatchesFacultyToo(t *testing.T) {
	program := catalogProgram("Kibernetinis saugumas", "Vilnius", 4, types.DegreeBachelor)
	program.Faculty = &types.Faculty{Name: "Informatikos fakultetas"}

	p := NewFilterProvider(&stubSource{programs: []*types.Program{program}})
	resp, err := p.Recommend(context.Background(), &types.Preferences{
		Academic: types.AcademicPreferences{FieldOfStudy: []string{"informatika"}},
	})

	require.NoError(t, err)
	assert.Len(t, resp.StrictPrograms, 1)
}

func TestFilterProvider_RequiresPreferences(t *testing.T) {
	p := NewFilterProvider(&stubSource{})
	_, err := p.Recommend(context.Background(), nil)
	assert.Error(t, err)
}

func TestFilterProvider_SourceError(t *testing.T) {
	p := NewFilterProvider(&stubSource{err: assert.AnError})
	_, err := p.Recommend(context.Background(), &types.Preferences{})
	assert.Error(t, err)
}
