package provider

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dovydas-v/uniguide/internal/types"
)

type stubLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubLLM) Close() error { return nil }

func TestAIProvider_UsesModelSelection(t *testing.T) {
	strict := catalogProgram("Informatika", "Vilnius", 4.5, types.DegreeBachelor)
	relaxed := catalogProgram("Programų sistemos", "Kaunas", 4.0, types.DegreeBachelor)
	ignored := catalogProgram("Teisė", "Vilnius", 3.0, types.DegreeBachelor)

	client := &stubLLM{response: fmt.Sprintf(
		`{"strict_ids": ["%s"], "relaxed_ids": ["%s"]}`, strict.ID, relaxed.ID,
	)}
	p := NewAIProvider(client, &stubSource{programs: []*types.Program{strict, relaxed, ignored}})

	resp, err := p.Recommend(context.Background(), &types.Preferences{})

	require.NoError(t, err)
	require.Len(t, resp.StrictPrograms, 1)
	assert.Equal(t, strict.ID, resp.StrictPrograms[0].ID)
	require.Len(t, resp.RelaxedPrograms, 1)
	assert.Equal(t, relaxed.ID, resp.RelaxedPrograms[0].ID)
}

func TestAIProvider_DropsInventedIDs(t *testing.T) {
	known := catalogProgram("Informatika", "Vilnius", 4.5, types.DegreeBachelor)
	client := &stubLLM{response: fmt.Sprintf(
		`{"strict_ids": ["%s", "b07a61a8-36e5-4be1-a689-b7e9388cbivalid"], "relaxed_ids": []}`, known.ID,
	)}
	p := NewAIProvider(client, &stubSource{programs: []*types.Program{known}})

	// Invalid uuid in the selection makes the whole payload malformed, which
	// falls back to the filter provider rather than failing the request.
	resp, err := p.Recommend(context.Background(), &types.Preferences{})

	require.NoError(t, err)
	assert.Len(t, resp.StrictPrograms, 1)
}

func TestAIProvider_FallsBackOnModelError(t *testing.T) {
	program := catalogProgram("Informatika", "Vilnius", 4.5, types.DegreeBachelor)
	client := &stubLLM{err: assert.AnError}
	p := NewAIProvider(client, &stubSource{programs: []*types.Program{program}})

	resp, err := p.Recommend(context.Background(), &types.Preferences{})

	require.NoError(t, err)
	assert.Len(t, resp.StrictPrograms, 1)
}

func TestAIProvider_FallsBackOnMalformedJSON(t *testing.T) {
	program := catalogProgram("Informatika", "Vilnius", 4.5, types.DegreeBachelor)
	client := &stubLLM{response: "not json at all"}
	p := NewAIProvider(client, &stubSource{programs: []*types.Program{program}})

	resp, err := p.Recommend(context.Background(), &types.Preferences{})

	require.NoError(t, err)
	assert.Len(t, resp.StrictPrograms, 1)
}

func TestAIProvider_EmptyCatalogShortCircuits(t *testing.T) {
	client := &stubLLM{}
	p := NewAIProvider(client, &stubSource{})

	resp, err := p.Recommend(context.Background(), &types.Preferences{})

	require.NoError(t, err)
	assert.True(t, resp.Empty())
	assert.Empty(t, client.prompts)
}

func TestAIProvider_PromptCarriesPreferencesAndCandidates(t *testing.T) {
	program := catalogProgram("Informatika", "Vilnius", 4.5, types.DegreeBachelor)
	client := &stubLLM{response: fmt.Sprintf(`{"strict_ids": ["%s"]}`, program.ID)}
	p := NewAIProvider(client, &stubSource{programs: []*types.Program{program}})

	_, err := p.Recommend(context.Background(), &types.Preferences{
		Academic:    types.AcademicPreferences{FieldOfStudy: []string{"informatika"}},
		CareerGoals: []string{"research"},
	})

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "informatika")
	assert.Contains(t, client.prompts[0], "research")
	assert.Contains(t, client.prompts[0], program.ID.String())
}
