package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/dovydas-v/uniguide/internal/llm"
	"github.com/dovydas-v/uniguide/internal/prompts"
	"github.com/dovydas-v/uniguide/internal/ranking"
	"github.com/dovydas-v/uniguide/internal/types"
)

// AIProvider asks an LLM to split the candidate catalog into strict matches
// and relaxed alternatives for a preference profile. Malformed model output
// falls back to the deterministic filter so the user still gets results; the
// request only fails when both paths fail.
type AIProvider struct {
	client   llm.Client
	source   ProgramSource
	fallback *FilterProvider
}

// NewAIProvider creates an AI-backed provider over a program source.
func NewAIProvider(client llm.Client, source ProgramSource) *AIProvider {
	return &AIProvider{
		client:   client,
		source:   source,
		fallback: NewFilterProvider(source),
	}
}

// selection is the JSON shape the model is asked to produce.
type selection struct {
	StrictIDs  []uuid.UUID `json:"strict_ids"`
	RelaxedIDs []uuid.UUID `json:"relaxed_ids"`
}

// Recommend asks the model for a selection over the candidate catalog.
func (p *AIProvider) Recommend(ctx context.Context, prefs *types.Preferences) (*types.RecommendationResponse, error) {
	if prefs == nil {
		return nil, fmt.Errorf("preferences are required")
	}

	candidates, err := p.source.ListCandidatePrograms(ctx, prefs.Academic.DegreeType)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate programs: %w", err)
	}
	if len(candidates) == 0 {
		return &types.RecommendationResponse{
			StrictPrograms:  []*types.Program{},
			RelaxedPrograms: []*types.Program{},
		}, nil
	}

	raw, err := p.client.GenerateJSON(ctx, buildSelectionPrompt(prefs, candidates))
	if err != nil {
		log.Printf("[provider] AI selection failed, falling back to filter: %v", err)
		return p.fallback.Recommend(ctx, prefs)
	}

	var sel selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		log.Printf("[provider] malformed AI selection, falling back to filter: %v", err)
		return p.fallback.Recommend(ctx, prefs)
	}

	byID := make(map[uuid.UUID]*types.Program, len(candidates))
	for _, c := range candidates {
		if c != nil {
			byID[c.ID] = c
		}
	}

	resp := &types.RecommendationResponse{
		StrictPrograms:  resolveIDs(sel.StrictIDs, byID),
		RelaxedPrograms: resolveIDs(sel.RelaxedIDs, byID),
	}
	if resp.Empty() {
		// A model that selected nothing usable is treated like malformed output.
		return p.fallback.Recommend(ctx, prefs)
	}
	return resp, nil
}

// resolveIDs maps selected ids back to catalog programs, dropping ids the
// model invented.
func resolveIDs(ids []uuid.UUID, byID map[uuid.UUID]*types.Program) []*types.Program {
	programs := make([]*types.Program, 0, len(ids))
	for _, id := range ids {
		if program, ok := byID[id]; ok {
			programs = append(programs, program)
		}
	}
	return programs
}

// buildSelectionPrompt renders the preferences and the candidate catalog into
// the selection prompt. Descriptions are stripped of markup and truncated so
// the prompt stays within reasonable token bounds.
func buildSelectionPrompt(prefs *types.Preferences, candidates []*types.Program) string {
	var sb strings.Builder
	sb.WriteString(prompts.MustGet("selection.json", "program_selection"))
	sb.WriteString("\n")

	sb.WriteString("Student preferences:\n")
	if prefs.Academic.DegreeType != "" {
		fmt.Fprintf(&sb, "- degree: %s\n", prefs.Academic.DegreeType)
	}
	if len(prefs.Academic.FieldOfStudy) > 0 {
		fmt.Fprintf(&sb, "- fields of study: %s\n", strings.Join(prefs.Academic.FieldOfStudy, ", "))
	}
	if len(prefs.Academic.Locations) > 0 {
		fmt.Fprintf(&sb, "- locations: %s\n", strings.Join(prefs.Academic.Locations, ", "))
	}
	if prefs.Academic.MinRating > 0 {
		fmt.Fprintf(&sb, "- minimum rating: %.1f\n", prefs.Academic.MinRating)
	}
	if prefs.Financial.StateFinanced {
		sb.WriteString("- must be state financed\n")
	}
	if prefs.Financial.MaxYearlyCost > 0 {
		fmt.Fprintf(&sb, "- max yearly cost: %.0f\n", prefs.Financial.MaxYearlyCost)
	}
	if len(prefs.CareerGoals) > 0 {
		fmt.Fprintf(&sb, "- career goals: %s\n", strings.Join(prefs.CareerGoals, ", "))
	}
	if len(prefs.Interests) > 0 {
		fmt.Fprintf(&sb, "- interests: %s\n", strings.Join(prefs.Interests, ", "))
	}
	if prefs.FreeFormDescription != "" {
		fmt.Fprintf(&sb, "- in their own words: %s\n", prefs.FreeFormDescription)
	}

	sb.WriteString("\nCandidate programs:\n")
	for _, c := range candidates {
		if c == nil {
			continue
		}
		description := ranking.PlainText(c.Description)
		if len(description) > 200 {
			description = description[:200]
		}
		fmt.Fprintf(&sb, "- id=%s title=%q university=%q location=%q rating=%.1f description=%q\n",
			c.ID, c.Title, c.UniversityName(), universityLocation(c), c.Rating, description)
	}
	return sb.String()
}

func universityLocation(p *types.Program) string {
	if p.University == nil {
		return ""
	}
	return p.University.Location
}
